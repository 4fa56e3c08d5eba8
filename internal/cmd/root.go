package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"taskclaim/internal/claim"
	"taskclaim/internal/config"
	"taskclaim/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "taskclaim",
	Short: "Exclusive task claiming for multi-agent sessions",
	Long: `Taskclaim lets concurrent agents claim tasks from a shared team
document without racing each other. Every claim takes an exclusive file
lock on the team directory, so two agents can never claim the same task.

Run 'taskclaim serve' to expose the safe_claim tool to MCP clients over
stdio, or 'taskclaim claim' to claim a task directly.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/taskclaim/config.yaml)")
	rootCmd.PersistentFlags().String("tasks-dir", "", "base tasks directory (default is ~/.claude/tasks)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("paths.tasks_dir", rootCmd.PersistentFlags().Lookup("tasks-dir"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TASKCLAIM")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TASKCLAIM_PATHS_TASKS_DIR for paths.tasks_dir
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the logger described by the current config.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// newService builds a claim service over the configured tasks directory.
func newService(cfg *config.Config, log *logging.Logger) *claim.Service {
	return claim.NewService(cfg.Paths.ResolveTasksDir(), log)
}
