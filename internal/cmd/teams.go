package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskclaim/internal/config"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List team directories",
	Long: `List every team under the base tasks directory, in the order the
default-team selection uses (lexicographic; the first entry is the
default when no team is given).`,
	RunE: runTeams,
}

func init() {
	rootCmd.AddCommand(teamsCmd)
}

func runTeams(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	names, err := newService(cfg, nil).Resolver().Teams()
	if err != nil {
		return err
	}

	for i, name := range names {
		if i == 0 {
			fmt.Printf("%s (default)\n", name)
			continue
		}
		fmt.Println(name)
	}
	return nil
}
