// Package config loads and saves the bibli configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bibli", "config.yml")
}

// Load reads the config from disk (or env). A missing file is fine;
// defaults cover a dataset sitting next to the binary.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("library.dataset", defaultDataset())
	v.SetDefault("library.page_size", 48)
	v.SetDefault("library.quotes_page_size", 18)
	v.SetDefault("display.no_color", false)
	v.SetDefault("display.covers", "")

	v.SetEnvPrefix("BIBLI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("BIBLI_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Library.Dataset = ExpandHome(cfg.Library.Dataset)
	cfg.Display.Covers = ExpandHome(cfg.Display.Covers)
	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDataset() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "bibli", "books.json")
}
