package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove CORPUS...",
		Short: "Remove installed corpora",
		Long: `Delete corpus files from the local data directory and drop their
records from the local metadata store.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRemove,
	}

	return cmd
}

func runRemove(cmd *cobra.Command, names []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager := newManager(cfg)

	failed := 0
	for _, name := range names {
		if manager.Remove(cmd.Context(), name) {
			fmt.Printf("Removed: %s\n", name)
		} else {
			fmt.Printf("Not installed: %s\n", name)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to remove %d of %d corpora", failed, len(names))
	}
	return nil
}
