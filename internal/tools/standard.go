package tools

import (
	"context"
	"log/slog"

	"github.com/aces-framework/aces-governance/internal/logger"
	"github.com/aces-framework/aces-governance/internal/lookup"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetStandardTool handles the get_standard MCP tool.
type GetStandardTool struct {
	engine *lookup.Engine
	log    *slog.Logger
}

// NewGetStandardTool creates a GetStandardTool.
func NewGetStandardTool(engine *lookup.Engine) *GetStandardTool {
	return &GetStandardTool{engine: engine, log: logger.ForComponent("tools")}
}

// Definition returns the MCP tool definition for registration.
func (t *GetStandardTool) Definition() mcp.Tool {
	return mcp.NewTool("get_standard",
		mcp.WithDescription(
			"Get a section of STANDARDS.md by section number (e.g. '13') or keyword "+
				"(e.g. 'testing'). Returns the section body, or the matching section "+
				"titles when the keyword is ambiguous.",
		),
		mcp.WithString("section",
			mcp.Required(),
			mcp.Description("Section number or keyword."),
		),
	)
}

// Handle processes the get_standard tool call.
func (t *GetStandardTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, errResult := requireString(req, "section", "provide a section number or keyword")
	if errResult != nil {
		return errResult, nil
	}

	out, err := t.engine.Standard(section)
	return textOrError(t.log, "get_standard", out.Text(), err), nil
}

// GetArchitectureTool handles the get_architecture MCP tool.
type GetArchitectureTool struct {
	engine *lookup.Engine
	log    *slog.Logger
}

// NewGetArchitectureTool creates a GetArchitectureTool.
func NewGetArchitectureTool(engine *lookup.Engine) *GetArchitectureTool {
	return &GetArchitectureTool{engine: engine, log: logger.ForComponent("tools")}
}

// Definition returns the MCP tool definition for registration.
func (t *GetArchitectureTool) Definition() mcp.Tool {
	return mcp.NewTool("get_architecture",
		mcp.WithDescription(
			"Get a section of ARCHITECTURE.md by keyword, e.g. 'dependency graph' "+
				"or 'interface boundaries'.",
		),
		mcp.WithString("section",
			mcp.Required(),
			mcp.Description("Keyword matched against section titles and bodies."),
		),
	)
}

// Handle processes the get_architecture tool call.
func (t *GetArchitectureTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, errResult := requireString(req, "section", "provide a keyword")
	if errResult != nil {
		return errResult, nil
	}

	out, err := t.engine.Architecture(section)
	return textOrError(t.log, "get_architecture", out.Text(), err), nil
}
