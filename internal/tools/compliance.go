package tools

import (
	"context"
	"log/slog"

	"github.com/aces-framework/aces-governance/internal/compliance"
	"github.com/aces-framework/aces-governance/internal/logger"
	"github.com/mark3labs/mcp-go/mcp"
)

// ComplianceTool handles the check_repo_compliance MCP tool.
type ComplianceTool struct {
	checker *compliance.Checker
	log     *slog.Logger
}

// NewComplianceTool creates a ComplianceTool.
func NewComplianceTool(checker *compliance.Checker) *ComplianceTool {
	return &ComplianceTool{checker: checker, log: logger.ForComponent("tools")}
}

// Definition returns the MCP tool definition for registration.
func (t *ComplianceTool) Definition() mcp.Tool {
	return mcp.NewTool("check_repo_compliance",
		mcp.WithDescription(
			"Check an ACES repository against governance standards: required files, "+
				"naming, manifest content, template drift and CI workflow. "+
				"Issues (FAIL/WARN) are listed first, then passed checks.",
		),
		mcp.WithString("repo_path",
			mcp.Required(),
			mcp.Description("Path to the repository root."),
		),
		mcp.WithString("repo_type",
			mcp.Required(),
			mcp.Description("Project type: rust, python, or governance."),
			mcp.Enum("rust", "python", "governance"),
		),
	)
}

// Handle processes the check_repo_compliance tool call.
func (t *ComplianceTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoPath, errResult := requireString(req, "repo_path", "provide the repository path")
	if errResult != nil {
		return errResult, nil
	}
	repoType := req.GetString("repo_type", "")

	t.log.Debug("check_repo_compliance", "repo_path", repoPath, "repo_type", repoType)
	text, err := t.checker.RenderCheck(repoPath, repoType)
	return textOrError(t.log, "check_repo_compliance", text, err), nil
}
