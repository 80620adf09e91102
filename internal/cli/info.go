package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rattanarit/pythainlp/pkg/fsutil"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info CORPUS",
		Short: "Show details of an installed corpus",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	return cmd
}

func runInfo(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager := newManager(cfg)

	rec, found := manager.GetCorpusDBDetail(args[0])
	if !found {
		return fmt.Errorf("corpus not installed: %s", args[0])
	}

	path := cfg.GetFullDataPath(rec.FileName)
	status := "installed"
	if !fsutil.Exists(path) {
		status = "file missing"
	}

	tabWriter := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	fmt.Fprintf(tabWriter, "Name:\t%s\n", rec.Name)
	fmt.Fprintf(tabWriter, "Version:\t%s\n", rec.Version)
	fmt.Fprintf(tabWriter, "File:\t%s\n", path)
	if rec.Foldername != "" {
		fmt.Fprintf(tabWriter, "Unpacked to:\t%s\n", cfg.GetFullDataPath(rec.Foldername))
	}
	fmt.Fprintf(tabWriter, "Status:\t%s\n", status)
	return tabWriter.Flush()
}
