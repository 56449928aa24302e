package tools

import (
	"context"
	"log/slog"

	"github.com/aces-framework/aces-governance/internal/logger"
	"github.com/aces-framework/aces-governance/internal/lookup"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListADRsTool handles the list_adrs MCP tool.
type ListADRsTool struct {
	engine *lookup.Engine
	log    *slog.Logger
}

// NewListADRsTool creates a ListADRsTool.
func NewListADRsTool(engine *lookup.Engine) *ListADRsTool {
	return &ListADRsTool{engine: engine, log: logger.ForComponent("tools")}
}

// Definition returns the MCP tool definition for registration.
func (t *ListADRsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_adrs",
		mcp.WithDescription(
			"List all ACES Architecture Decision Records with number, title and status. "+
				"Use get_adr to read one in full.",
		),
	)
}

// Handle processes the list_adrs tool call.
func (t *ListADRsTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := t.engine.ListADRs()
	return textOrError(t.log, "list_adrs", text, err), nil
}

// GetADRTool handles the get_adr MCP tool.
type GetADRTool struct {
	engine *lookup.Engine
	log    *slog.Logger
}

// NewGetADRTool creates a GetADRTool.
func NewGetADRTool(engine *lookup.Engine) *GetADRTool {
	return &GetADRTool{engine: engine, log: logger.ForComponent("tools")}
}

// Definition returns the MCP tool definition for registration.
func (t *GetADRTool) Definition() mcp.Tool {
	return mcp.NewTool("get_adr",
		mcp.WithDescription(
			"Get an ACES Architecture Decision Record by number or keyword. "+
				"Numbers are zero-padded, so '1', '01' and '0001' all find ADR-0001. "+
				"A keyword matching several ADRs returns a list to choose from.",
		),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("ADR number (e.g. '19') or keyword (e.g. 'formal methods')."),
		),
	)
}

// Handle processes the get_adr tool call.
func (t *GetADRTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireString(req, "identifier", "provide an ADR number or keyword")
	if errResult != nil {
		return errResult, nil
	}

	t.log.Debug("get_adr", "identifier", id)
	out, err := t.engine.ADR(id)
	return textOrError(t.log, "get_adr", out.Text(), err), nil
}
