package cli

import (
	"fmt"
	"strings"

	"github.com/rattanarit/pythainlp/pkg/fsutil"
	"github.com/rattanarit/pythainlp/pkg/store"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed corpora",
		Long: `List all corpora recorded in the local metadata store.

By default, shows all installed corpora with name and version.
Use --name to filter corpora by name.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(nameFilter)
		},
	}

	cmd.Flags().StringVar(&nameFilter, "name", "", "Filter corpora by name (partial match)")

	return cmd
}

func runList(nameFilter string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.GetDatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open local corpus store: %w", err)
	}

	var records []store.Record
	for _, rec := range db.Records() {
		if nameFilter == "" || strings.Contains(rec.Name, strings.ToLower(nameFilter)) {
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		fmt.Println("No corpora installed")
		return nil
	}

	fmt.Printf("%-30s %-15s %s\n", "CORPUS NAME", "VERSION", "STATUS")
	fmt.Println(strings.Repeat("-", 60))

	for _, rec := range records {
		status := "installed"
		if !fsutil.Exists(cfg.GetFullDataPath(rec.FileName)) {
			status = "file missing"
		}
		fmt.Printf("%-30s %-15s %s\n", rec.Name, rec.Version, status)
	}

	fmt.Printf("\nTotal: %d corpora\n", len(records))
	return nil
}
