package cli

import (
	"fmt"
	"os"

	"github.com/rattanarit/pythainlp/internal/logger"
	"github.com/rattanarit/pythainlp/pkg/config"
	"github.com/rattanarit/pythainlp/pkg/corpus"
	"github.com/rattanarit/pythainlp/pkg/download"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	Quiet      *bool
)

// loadConfig loads the configuration honoring the global --config flag; a
// missing file yields defaults.
func loadConfig() (*config.Config, error) {
	path := getConfigPath()
	if path == "" {
		return nil, fmt.Errorf("cannot determine configuration path")
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	return cfg, nil
}

// newManager creates a corpus manager from the loaded config. Progress
// reporting on stdout is enabled unless --quiet was given.
func newManager(cfg *config.Config) *corpus.Manager {
	logger.InitLogger(cfg.Settings.LogLevel)

	manager := corpus.New(cfg)
	if Quiet == nil || !*Quiet {
		manager.Progress = download.NewConsoleProgress(os.Stdout)
	}
	return manager
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}
