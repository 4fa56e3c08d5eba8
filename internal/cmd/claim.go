package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskclaim/internal/config"
)

var (
	claimOwner string
	claimTeam  string
)

var claimCmd = &cobra.Command{
	Use:   "claim [task-id]",
	Short: "Claim a task for an agent",
	Long: `Claim atomically assigns a pending task to the given owner.

The claim fails if the task is already claimed, in progress, or completed,
naming the current owner so the agent can pick another task.`,
	Args: cobra.ExactArgs(1),
	RunE: runClaim,
}

func init() {
	rootCmd.AddCommand(claimCmd)

	claimCmd.Flags().StringVarP(&claimOwner, "owner", "o", "", "agent name claiming the task (required)")
	claimCmd.Flags().StringVarP(&claimTeam, "team", "t", "", "team name (default: first team directory)")
	_ = claimCmd.MarkFlagRequired("owner")
}

func runClaim(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	msg, err := newService(cfg, log).Claim(args[0], claimOwner, claimTeam)
	if err != nil {
		// cobra prefixes RunE errors with "Error: ", which yields the
		// same message shape the MCP tool produces.
		return err
	}

	fmt.Println(msg)
	return nil
}
