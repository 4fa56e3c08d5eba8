package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskclaim/internal/config"
	"taskclaim/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View server logs",
	Long: `View and filter the debug log written by the MCP server.

Requires logging.dir to be configured; with logs going to stderr there
is nothing to read back.

Examples:
  # Show the last 50 entries
  taskclaim logs

  # Show all warnings and errors
  taskclaim logs --level warn -n 0

  # Follow one team's claims from the last hour
  taskclaim logs --team backend --since 1h`,
	RunE: runLogs,
}

var (
	logsTail  int
	logsLevel string
	logsTeam  string
	logsOwner string
	logsSince string
	logsGrep  string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsTeam, "team", "", "filter by team")
	logsCmd.Flags().StringVar(&logsOwner, "owner", "", "filter by claiming owner")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "filter entries whose message contains this text")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Logging.Dir == "" {
		return fmt.Errorf("logging.dir is not configured; logs go to stderr")
	}

	filter := logging.LogFilter{
		Level:           logsLevel,
		Team:            logsTeam,
		Owner:           logsOwner,
		MessageContains: logsGrep,
	}
	if logsSince != "" {
		d, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid --since duration: %w", err)
		}
		filter.Since = time.Now().Add(-d)
	}

	entries, err := logging.AggregateLogs(cfg.Logging.Dir)
	if err != nil {
		return err
	}
	entries = logging.FilterLogs(entries, filter)

	if logsTail > 0 && len(entries) > logsTail {
		entries = entries[len(entries)-logsTail:]
	}

	for _, e := range entries {
		fmt.Println(formatLogEntry(e))
	}
	return nil
}

// formatLogEntry renders one entry as a single human-readable line.
func formatLogEntry(e logging.LogEntry) string {
	var sb strings.Builder
	sb.WriteString(e.Timestamp.Format("15:04:05"))
	sb.WriteString(fmt.Sprintf(" %-5s", strings.ToUpper(e.Level)))
	if e.Team != "" {
		sb.WriteString(" [" + e.Team)
		if e.Owner != "" {
			sb.WriteString("/" + e.Owner)
		}
		sb.WriteString("]")
	}
	sb.WriteString(" " + e.Message)
	for k, v := range e.Attrs {
		sb.WriteString(fmt.Sprintf(" %s=%v", k, v))
	}
	return sb.String()
}
