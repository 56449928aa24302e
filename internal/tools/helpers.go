// Package tools implements the MCP tool handlers for the ACES governance
// server.
//
// Each file holds one tool: a struct carrying its dependencies, a
// Definition for registration and a Handle method. Every outcome,
// including not-found, ambiguity and rejected input, is returned as text.
package tools

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// requireString returns the trimmed argument, or an error result when it
// is empty.
func requireString(req mcp.CallToolRequest, name, hint string) (string, *mcp.CallToolResult) {
	v := strings.TrimSpace(req.GetString(name, ""))
	if v == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("'%s' is required: %s", name, hint))
	}
	return v, nil
}

// textOrError renders a lookup that may have failed to read governance
// files. Read failures are logged and returned as error text.
func textOrError(log *slog.Logger, tool, text string, err error) *mcp.CallToolResult {
	if err != nil {
		log.Warn("governance read failed", "tool", tool, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error reading governance files: %v", err))
	}
	return mcp.NewToolResultText(text)
}
