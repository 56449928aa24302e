package tools

import (
	"context"

	"github.com/aces-framework/aces-governance/internal/issues"
	"github.com/mark3labs/mcp-go/mcp"
)

// ProposeADRTool handles the propose_adr MCP tool. It files a GitHub
// issue; no ADR file is written.
type ProposeADRTool struct {
	filer *issues.Filer
}

// NewProposeADRTool creates a ProposeADRTool.
func NewProposeADRTool(filer *issues.Filer) *ProposeADRTool {
	return &ProposeADRTool{filer: filer}
}

// Definition returns the MCP tool definition for registration.
func (t *ProposeADRTool) Definition() mcp.Tool {
	return mcp.NewTool("propose_adr",
		mcp.WithDescription(
			"Propose a new Architecture Decision Record by opening a governance issue "+
				"with the gh CLI. The issue carries the next ADR number; the formal ADR "+
				"is written once the discussion reaches consensus.",
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Short title for the decision."),
		),
		mcp.WithString("context",
			mcp.Required(),
			mcp.Description("The problem or situation that needs a decision."),
		),
		mcp.WithString("decision",
			mcp.Required(),
			mcp.Description("A sketch of the proposed decision."),
		),
	)
}

// Handle processes the propose_adr tool call.
func (t *ProposeADRTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, errResult := requireString(req, "title", "provide a short title for the decision")
	if errResult != nil {
		return errResult, nil
	}
	adrContext, errResult := requireString(req, "context", "describe the problem context")
	if errResult != nil {
		return errResult, nil
	}
	decision, errResult := requireString(req, "decision", "sketch the proposed decision")
	if errResult != nil {
		return errResult, nil
	}

	return mcp.NewToolResultText(t.filer.Propose(ctx, title, adrContext, decision)), nil
}
