// Package config provides configuration management for the corpus data
// manager. It handles loading, validating, and saving application settings,
// and resolves the paths inside the configured data directory where corpus
// payloads and the local metadata store live. The package supports YAML
// configuration files and provides sensible defaults while allowing for
// customization through configuration files and environment variables.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rattanarit/pythainlp/pkg/errors"
	"github.com/rattanarit/pythainlp/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// DataDir is the directory where corpus files and the local metadata
	// store are kept.
	DataDir string `yaml:"data_dir,omitempty"`

	// CatalogURL is the URL of the remote corpus catalog document.
	CatalogURL string `yaml:"catalog_url,omitempty"`

	// Network settings
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent,omitempty"`

	// EnableHooks enables execution of Tengo hook scripts from the hooks
	// directory inside the data directory.
	EnableHooks bool `yaml:"enable_hooks"`

	// Output settings
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultCatalogURL is the published corpus catalog.
	DefaultCatalogURL = "https://pythainlp.github.io/pythainlp-corpus/db.json"

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent identifies this client to the catalog server.
	DefaultUserAgent = "pythainlp-data/1.0"

	// DataDirEnv overrides the data directory location when set.
	DataDirEnv = "PYTHAINLP_DATA_DIR"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2

	dataDirName      = "pythainlp-data"
	databaseFileName = "db.json"
	hooksDirName     = "hooks"
	appName          = "pythainlp"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			DataDir:     defaultDataDir(),
			CatalogURL:  DefaultCatalogURL,
			HTTPTimeout: DefaultHTTPTimeout,
			UserAgent:   DefaultUserAgent,
			LogLevel:    "info",
		},
	}
}

// defaultDataDir resolves the data directory: the PYTHAINLP_DATA_DIR
// environment variable wins, otherwise ~/pythainlp-data.
func defaultDataDir() string {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to the working directory if the home cannot be determined
		return dataDirName
	}
	return filepath.Join(home, dataDirName)
}

// GetDefaultConfigPath returns the default location of the config file.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine user config directory")
	}
	return filepath.Join(configDir, appName, "config.yaml"), nil
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration, not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves configuration to a file atomically.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(err, "failed to rename temporary config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if c.Settings.HTTPTimeout < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "http_timeout cannot be negative")
	}
	switch strings.ToLower(c.Settings.LogLevel) {
	case "", "error", "warn", "warning", "info", "debug":
	default:
		return errors.Wrapf(errors.ErrConfigValidation,
			"invalid log level '%s', must be one of: error, warn, info, debug", c.Settings.LogLevel)
	}
	return nil
}

// applyDefaults fills in zero values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.DataDir == "" {
		c.Settings.DataDir = defaults.Settings.DataDir
	}
	if c.Settings.CatalogURL == "" {
		c.Settings.CatalogURL = defaults.Settings.CatalogURL
	}
	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.UserAgent == "" {
		c.Settings.UserAgent = defaults.Settings.UserAgent
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}

// GetDatabasePath returns the path of the local metadata store file.
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Settings.DataDir, databaseFileName)
}

// GetFullDataPath joins the configured data directory with a corpus file name.
// Absolute names are returned unchanged.
func (c *Config) GetFullDataPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Settings.DataDir, name)
}

// GetHooksDir returns the directory scanned for Tengo hook scripts.
func (c *Config) GetHooksDir() string {
	return filepath.Join(c.Settings.DataDir, hooksDirName)
}
