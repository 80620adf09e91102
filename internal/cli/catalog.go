package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rattanarit/pythainlp/pkg/catalog"
	"github.com/spf13/cobra"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd() *cobra.Command {
	var catalogURL string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List corpora available in the remote catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, catalogURL)
		},
	}

	cmd.Flags().StringVar(&catalogURL, "url", "", "Catalog URL (defaults to config)")

	return cmd
}

func runCatalog(cmd *cobra.Command, catalogURL string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if catalogURL == "" {
		catalogURL = cfg.Settings.CatalogURL
	}

	client := catalog.NewClient(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent)
	doc, err := client.Fetch(cmd.Context(), catalogURL)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%-30s %-15s %s\n", "CORPUS NAME", "LATEST", "VERSIONS")
	fmt.Println(strings.Repeat("-", 60))
	for _, name := range names {
		entry := doc[name]
		versions := make([]string, 0, len(entry.Versions))
		for version := range entry.Versions {
			versions = append(versions, version)
		}
		sort.Slice(versions, func(i, j int) bool {
			return catalog.CompareVersions(versions[i], versions[j]) < 0
		})
		fmt.Printf("%-30s %-15s %s\n", name, entry.LatestVersion, strings.Join(versions, ", "))
	}

	fmt.Printf("\nTotal: %d corpora\n", len(names))
	return nil
}
