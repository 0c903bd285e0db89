// Package config provides configuration management for the mcget acquisition
// engine. It handles loading, validating, and saving application settings and
// derives every cache-layout path from two configured roots so the whole
// pipeline can be pointed at injected directories in tests.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/fsutil"
	"github.com/glorpus-work/mcget/pkg/platform"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// InternalDir holds versions, libraries and native archives.
	InternalDir string `yaml:"internal_dir,omitempty"`
	// AssetsDir holds asset indexes and the content-addressed object store.
	AssetsDir string `yaml:"assets_dir,omitempty"`

	// Network settings
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	// ManifestURL overrides the upstream version manifest location. Empty
	// selects the default metadata server.
	ManifestURL string `yaml:"manifest_url,omitempty"`
	// ResourcesURL overrides the upstream asset object host.
	ResourcesURL string `yaml:"resources_url,omitempty"`
	// ConnectionLimit caps the number of simultaneously active transfers in
	// a transfer group. It exists to stay under OS file descriptor limits.
	ConnectionLimit int `yaml:"connection_limit"`
	// AssetBatchSize is the number of asset downloads queued before the
	// transfer group is flushed.
	AssetBatchSize int `yaml:"asset_batch_size"`

	// Platform override; auto-detected when empty.
	Platform platform.Platform `yaml:"platform,omitempty"`

	// Output settings
	LogLevel string `yaml:"log_level"`
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP request.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultConnectionLimit is the default ceiling on concurrently active
	// transfers in a group.
	DefaultConnectionLimit = 128

	// DefaultAssetBatchSize is the default asset queue size between flushes.
	DefaultAssetBatchSize = 128
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	internalDir, err := fsutil.GetInternalDir()
	if err != nil {
		internalDir = "internal"
	}
	assetsDir, err := fsutil.GetAssetsDir()
	if err != nil {
		assetsDir = "assets"
	}

	return &Config{
		Settings: Settings{
			InternalDir:     internalDir,
			AssetsDir:       assetsDir,
			HTTPTimeout:     DefaultHTTPTimeout,
			ConnectionLimit: DefaultConnectionLimit,
			AssetBatchSize:  DefaultAssetBatchSize,
			Platform:        platform.Current(),
			LogLevel:        "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration.
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

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the configuration to path as YAML.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config to YAML")
	}
	return os.WriteFile(path, data, fsutil.FileModeSecure)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Settings.HTTPTimeout < 0 {
		return fmt.Errorf("%w: http_timeout cannot be negative", errors.ErrConfigValidation)
	}
	if c.Settings.ConnectionLimit < 1 {
		return fmt.Errorf("%w: connection_limit must be at least 1", errors.ErrConfigValidation)
	}
	if c.Settings.AssetBatchSize < 1 {
		return fmt.Errorf("%w: asset_batch_size must be at least 1", errors.ErrConfigValidation)
	}
	return nil
}

// GetDefaultConfigPath returns the default location of the config file.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, fsutil.AppName, "config.yaml"), nil
}
