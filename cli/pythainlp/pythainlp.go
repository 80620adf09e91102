package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rattanarit/pythainlp/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	quiet      bool
)

func main() {
	// Optional .env file for PYTHAINLP_DATA_DIR and friends.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pythainlp",
		Short: "Manage Thai NLP corpus data",
		Long: `pythainlp downloads and manages corpus files for Thai natural
language processing:
- CLI: download, remove, list, path
- Library: catalog lookup, integrity-checked downloads, local metadata store`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress download progress output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.Quiet = &quiet

	// Add subcommands
	cmd.AddCommand(
		cli.NewDownloadCmd(),
		cli.NewRemoveCmd(),
		cli.NewPathCmd(),
		cli.NewInfoCmd(),
		cli.NewListCmd(),
		cli.NewCatalogCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
