package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const defaultLogLevel = "info"

var (
	configPath string
	logLevel   string
)

// fileConfig represents the TOML configuration file.
// Fields left out of the file are nil and keep their flag values.
type fileConfig struct {
	Log   logConfig   `toml:"log"`
	Train trainConfig `toml:"train"`
}

type logConfig struct {
	Level *string `toml:"level"`
}

type trainConfig struct {
	MaxSweeps   *int   `toml:"max-sweeps"`
	Seed        *int64 `toml:"seed"`
	Interactive *bool  `toml:"interactive"`
}

// loadConfig reads a TOML config from the given path. Missing file is not an error.
func loadConfig(path string) (fileConfig, error) {
	if path == "" {
		return fileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "perceptron", "config.toml")
}

// applyConfig copies a config value into target unless the flag was set.
func applyConfig[T any](cmd *cobra.Command, name string, target *T, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
