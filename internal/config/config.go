// Package config loads formnote settings from an optional YAML file and
// FORMNOTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned when an explicitly requested config file does
// not exist.
var ErrConfigNotFound = errors.New("config: configuration file not found")

// DefaultFileName is looked up in the working directory when no file is given.
const DefaultFileName = "formnote.yaml"

// EnvPrefix prefixes every environment override, e.g. FORMNOTE_VAULT_DIR.
const EnvPrefix = "FORMNOTE"

// Config represents the application configuration.
type Config struct {
	Vault    VaultConfig    `mapstructure:"vault"`
	Builtins BuiltinsConfig `mapstructure:"builtins"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// VaultConfig locates the notes that may carry form schemas.
type VaultConfig struct {
	Dir        string   `mapstructure:"dir"`
	SchemasDir string   `mapstructure:"schemas_dir"`
	Extensions []string `mapstructure:"extensions"`
}

// BuiltinsConfig toggles the embedded schemas.
type BuiltinsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// OutputConfig controls where rendered notes land.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// WatchConfig tunes the schema watcher.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Vault: VaultConfig{
			Dir:        ".",
			Extensions: []string{".md"},
		},
		Builtins: BuiltinsConfig{Enabled: true},
		Logging:  LoggingConfig{Level: "info"},
		Watch:    WatchConfig{Debounce: 250 * time.Millisecond},
	}
}

// Load reads configuration. An empty configFile looks for formnote.yaml in
// the working directory and falls back to defaults when it is absent; an
// explicit path that does not exist yields ErrConfigNotFound. Environment
// variables override both.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	readFile := true
	if configFile == "" {
		configFile = DefaultFileName
		if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
			readFile = false
		}
	} else if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configFile)
	}

	if readFile {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configFile)
			}
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("vault.dir", cfg.Vault.Dir)
	v.SetDefault("vault.schemas_dir", cfg.Vault.SchemasDir)
	v.SetDefault("vault.extensions", cfg.Vault.Extensions)
	v.SetDefault("builtins.enabled", cfg.Builtins.Enabled)
	v.SetDefault("output.dir", cfg.Output.Dir)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("watch.debounce", cfg.Watch.Debounce)
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.Vault.Dir) == "" {
		c.Vault.Dir = "."
	}
	exts := c.Vault.Extensions[:0]
	for _, ext := range c.Vault.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, strings.ToLower(ext))
	}
	if len(exts) == 0 {
		exts = []string{".md"}
	}
	c.Vault.Extensions = exts
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = Default().Watch.Debounce
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// SchemasRoot is the directory scanned for schema notes.
func (c *Config) SchemasRoot() string {
	if c.Vault.SchemasDir == "" {
		return c.Vault.Dir
	}
	if filepath.IsAbs(c.Vault.SchemasDir) {
		return c.Vault.SchemasDir
	}
	return filepath.Join(c.Vault.Dir, c.Vault.SchemasDir)
}
