// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to environment variable overrides, e.g. NOTESCAPE_USE_COLOR.
const EnvPrefix = "NOTESCAPE"

// FileName is the config file looked up in the working directory.
const FileName = "notescape.yaml"

// Config represents the configuration settings for the application.
type Config struct {
	LogFolder   string `mapstructure:"log_folder" yaml:"log_folder"`
	CommandLog  string `mapstructure:"command_log" yaml:"command_log"`
	ErrorLog    string `mapstructure:"error_log" yaml:"error_log"`
	InfoLog     bool   `mapstructure:"info_log" yaml:"info_log"`
	UseColor    bool   `mapstructure:"use_color" yaml:"use_color"`
	ExportDir   string `mapstructure:"export_dir" yaml:"export_dir"`
	HistoryFile string `mapstructure:"history_file" yaml:"history_file"`
}

// Default returns the configuration used when no file or override is present.
func Default() *Config {
	return &Config{
		LogFolder:  "./log",
		CommandLog: "commands.log",
		ErrorLog:   "errors.log",
		UseColor:   true,
		ExportDir:  ".",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log_folder", d.LogFolder)
	v.SetDefault("command_log", d.CommandLog)
	v.SetDefault("error_log", d.ErrorLog)
	v.SetDefault("info_log", d.InfoLog)
	v.SetDefault("use_color", d.UseColor)
	v.SetDefault("export_dir", d.ExportDir)
	v.SetDefault("history_file", d.HistoryFile)
}

// Load reads the configuration from path (YAML). An empty path looks for
// notescape.yaml in the working directory and in $HOME/.config/notescape.
// A missing file is not an error; defaults and environment overrides apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("notescape")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "notescape"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case path != "" && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
