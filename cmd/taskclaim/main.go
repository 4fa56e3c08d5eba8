// Command taskclaim serves the safe_claim MCP tool over stdio and
// provides companion CLI commands for inspecting team task documents.
package main

import (
	"os"

	"taskclaim/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
