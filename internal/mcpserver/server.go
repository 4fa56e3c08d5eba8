// Package mcpserver exposes the claim service as an MCP tool over stdio.
//
// One tool is registered, safe_claim, mirroring the single operation of
// the claim protocol. Results are plain text in both directions: the
// confirmation line on success, "Error: <reason>" otherwise. Clients
// distinguish outcomes by message shape, so contention never surfaces
// as a protocol-level failure.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskclaim/internal/claim"
	"taskclaim/internal/logging"
)

// Server identity reported during the MCP handshake.
const (
	ServerName    = "taskclaim"
	ServerVersion = "0.1.0"
)

// instructions is the usage note handed to connecting agents.
const instructions = "Safe task claiming with file locking. " +
	"Use safe_claim before starting work on any task to prevent race conditions."

// New builds an MCP server with the safe_claim tool bound to svc.
func New(svc *claim.Service, log *logging.Logger) *server.MCPServer {
	if log == nil {
		log = logging.NopLogger()
	}

	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
	)

	tool := mcp.NewTool("safe_claim",
		mcp.WithDescription("Atomically claim a task with file locking. "+
			"Rejects if already claimed, in_progress, or completed."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Task ID to claim"),
		),
		mcp.WithString("owner",
			mcp.Required(),
			mcp.Description("Agent name claiming the task"),
		),
		mcp.WithString("team",
			mcp.Description("Team name (defaults to the first directory in the tasks dir)"),
		),
	)

	s.AddTool(tool, safeClaimHandler(svc, log.WithTool("safe_claim")))
	return s
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects or ctx is canceled.
func ServeStdio(ctx context.Context, s *server.MCPServer) error {
	return server.ServeStdio(s, server.WithStdioContextFunc(
		func(context.Context) context.Context { return ctx },
	))
}

// safeClaimHandler adapts the claim service to the MCP tool contract.
func safeClaimHandler(svc *claim.Service, log *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := request.RequireString("task_id")
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
		}
		owner, err := request.RequireString("owner")
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
		}
		team := request.GetString("team", "")

		msg, err := svc.Claim(taskID, owner, team)
		if err != nil {
			log.Debug("safe_claim failed", "task_id", taskID, "owner", owner, "error", err.Error())
			return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
		}
		return mcp.NewToolResultText(msg), nil
	}
}
