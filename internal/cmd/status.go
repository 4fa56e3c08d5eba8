package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskclaim/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status [team]",
	Short: "Show a team's tasks",
	Long:  `Display every task in the team's document with its status and owner.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	teamName := ""
	if len(args) > 0 {
		teamName = args[0]
	}

	list, paths, err := newService(cfg, nil).Tasks(teamName)
	if err != nil {
		return err
	}

	fmt.Printf("Team: %s\n", paths.Team)
	fmt.Printf("Document: %s\n", paths.Document)
	fmt.Printf("Tasks: %d\n\n", len(list))

	for _, task := range list {
		status := task.Status.String()
		if status == "" {
			status = "unset"
		}
		fmt.Printf("[%s] %s: %s\n", status, task.ID, task.Subject)
		if task.Owner != "" {
			fmt.Printf("    Owner: %s\n", task.Owner)
		}
		if len(task.BlockedBy) > 0 {
			fmt.Printf("    Blocked by: %v\n", task.BlockedBy)
		}
	}

	return nil
}
