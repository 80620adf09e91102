package cli

import (
	"fmt"

	"github.com/rattanarit/pythainlp/pkg/corpus"
	"github.com/spf13/cobra"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	var (
		force      bool
		version    string
		catalogURL string
	)

	cmd := &cobra.Command{
		Use:   "download CORPUS...",
		Short: "Download corpora",
		Long: `Download one or more corpora from the remote catalog into the local
data directory. A corpus that is already installed at the requested
version is left alone unless --force is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd, args, force, version, catalogURL)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Re-download even when already installed")
	cmd.Flags().StringVar(&version, "version", "", "Download a specific version instead of the latest")
	cmd.Flags().StringVar(&catalogURL, "url", "", "Catalog URL (defaults to config)")

	return cmd
}

func runDownload(cmd *cobra.Command, names []string, force bool, version, catalogURL string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager := newManager(cfg)

	opts := corpus.DownloadOptions{Force: force, Version: version, URL: catalogURL}
	failed := 0
	for _, name := range names {
		if !manager.Download(cmd.Context(), name, opts) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to download %d of %d corpora", failed, len(names))
	}
	return nil
}
