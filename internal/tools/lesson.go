package tools

import (
	"context"
	"log/slog"

	"github.com/aces-framework/aces-governance/internal/logger"
	"github.com/aces-framework/aces-governance/internal/lookup"
	"github.com/mark3labs/mcp-go/mcp"
)

// StandardsUpdateTool handles the check_standards_update_needed MCP tool.
// It reports whether a lesson learned is already covered by STANDARDS.md.
type StandardsUpdateTool struct {
	engine *lookup.Engine
	log    *slog.Logger
}

// NewStandardsUpdateTool creates a StandardsUpdateTool.
func NewStandardsUpdateTool(engine *lookup.Engine) *StandardsUpdateTool {
	return &StandardsUpdateTool{engine: engine, log: logger.ForComponent("tools")}
}

// Definition returns the MCP tool definition for registration.
func (t *StandardsUpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("check_standards_update_needed",
		mcp.WithDescription(
			"Check whether a lesson learned is already covered by STANDARDS.md. "+
				"Lists the covering sections, or suggests promoting the lesson to a "+
				"standard or an ADR.",
		),
		mcp.WithString("lesson",
			mcp.Required(),
			mcp.Description("The lesson in a sentence or two."),
		),
	)
}

// Handle processes the check_standards_update_needed tool call.
func (t *StandardsUpdateTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lesson, errResult := requireString(req, "lesson", "describe the lesson learned")
	if errResult != nil {
		return errResult, nil
	}

	text, err := t.engine.LessonCoverage(lesson)
	return textOrError(t.log, "check_standards_update_needed", text, err), nil
}
