// Package config loads taskclaim configuration from the config file,
// environment, and flags via viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete taskclaim configuration
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PathsConfig controls where task data lives on disk
type PathsConfig struct {
	// TasksDir is the base directory holding one subdirectory per team.
	// Defaults to ~/.claude/tasks. A leading ~ expands to the home directory.
	TasksDir string `mapstructure:"tasks_dir"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled turns the debug log on or off (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is the directory for the debug log; empty means stderr
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the log size in megabytes before rotation (0 = no rotation)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups"`
}

// ResolveTasksDir returns the base tasks directory with ~ expanded.
// An empty configured value falls back to ~/.claude/tasks; if the home
// directory cannot be determined, /tmp/.claude/tasks is used, matching
// the task system's own fallback.
func (p *PathsConfig) ResolveTasksDir() string {
	path := p.TasksDir
	if path == "" {
		path = "~/.claude/tasks"
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "/tmp"
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			TasksDir: "~/.claude/tasks",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("paths.tasks_dir", defaults.Paths.TasksDir)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskclaim")
	}
	// Fall back to ~/.config/taskclaim
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskclaim"
	}
	return filepath.Join(home, ".config", "taskclaim")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
