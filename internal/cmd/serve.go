package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskclaim/internal/config"
	"taskclaim/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Serve exposes the safe_claim tool to MCP clients over stdin/stdout.

The process runs until the client closes the connection. Logs go to the
configured log directory (or stderr), never stdout, which carries the
protocol stream.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	svc := newService(cfg, log)
	srv := mcpserver.New(svc, log)

	log.Info("mcp server starting",
		"tasks_dir", cfg.Paths.ResolveTasksDir(),
		"version", mcpserver.ServerVersion)

	if err := mcpserver.ServeStdio(cmd.Context(), srv); err != nil {
		log.Error("mcp server stopped", "error", err.Error())
		return err
	}
	return nil
}
