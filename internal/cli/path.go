package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPathCmd creates the path command.
func NewPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path CORPUS",
		Short: "Print the on-disk path of a corpus",
		Long: `Resolve and print the absolute path of an installed corpus file.
A corpus that is not installed yet is downloaded first.`,
		Args: cobra.ExactArgs(1),
		RunE: runPath,
	}

	return cmd
}

func runPath(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager := newManager(cfg)

	path, ok := manager.GetCorpusPath(cmd.Context(), args[0])
	if !ok {
		return fmt.Errorf("corpus not available: %s", args[0])
	}

	fmt.Println(path)
	return nil
}
