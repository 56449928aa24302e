package tools

import (
	"context"
	"log/slog"

	"github.com/aces-framework/aces-governance/internal/logger"
	"github.com/aces-framework/aces-governance/internal/lookup"
	"github.com/mark3labs/mcp-go/mcp"
)

// SearchGovernanceTool handles the search_governance MCP tool.
type SearchGovernanceTool struct {
	engine *lookup.Engine
	log    *slog.Logger
}

// NewSearchGovernanceTool creates a SearchGovernanceTool.
func NewSearchGovernanceTool(engine *lookup.Engine) *SearchGovernanceTool {
	return &SearchGovernanceTool{engine: engine, log: logger.ForComponent("tools")}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchGovernanceTool) Definition() mcp.Tool {
	return mcp.NewTool("search_governance",
		mcp.WithDescription(
			"Full-text search across STANDARDS.md, ARCHITECTURE.md, the templates README "+
				"and every ADR. Returns the first matching line of each document with "+
				"one line of context on either side.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive text to search for."),
		),
	)
}

// Handle processes the search_governance tool call.
func (t *SearchGovernanceTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, errResult := requireString(req, "query", "provide the text to search for")
	if errResult != nil {
		return errResult, nil
	}

	text, err := t.engine.Search(query)
	return textOrError(t.log, "search_governance", text, err), nil
}
