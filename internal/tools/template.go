package tools

import (
	"context"
	"log/slog"

	"github.com/aces-framework/aces-governance/internal/logger"
	"github.com/aces-framework/aces-governance/internal/lookup"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetTemplateTool handles the get_template MCP tool.
type GetTemplateTool struct {
	engine *lookup.Engine
	log    *slog.Logger
}

// NewGetTemplateTool creates a GetTemplateTool.
func NewGetTemplateTool(engine *lookup.Engine) *GetTemplateTool {
	return &GetTemplateTool{engine: engine, log: logger.ForComponent("tools")}
}

// Definition returns the MCP tool definition for registration.
func (t *GetTemplateTool) Definition() mcp.Tool {
	return mcp.NewTool("get_template",
		mcp.WithDescription(
			"Get a repo template from the governance templates directory. "+
				"Pass 'list' to see every template, a relative path such as "+
				"'ISSUE_TEMPLATE/config.yml', or part of a file name such as 'cargo'.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("'list', a template path, or a file name fragment."),
		),
	)
}

// Handle processes the get_template tool call.
func (t *GetTemplateTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, errResult := requireString(req, "name", "provide a template name or 'list'")
	if errResult != nil {
		return errResult, nil
	}

	out, err := t.engine.Template(name)
	return textOrError(t.log, "get_template", out.Text(), err), nil
}
