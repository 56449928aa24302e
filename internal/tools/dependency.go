package tools

import (
	"context"
	"strings"

	"github.com/aces-framework/aces-governance/internal/compliance"
	"github.com/mark3labs/mcp-go/mcp"
)

// DependencyTool handles the check_dependency_direction MCP tool.
type DependencyTool struct {
	tables *compliance.Tables
}

// NewDependencyTool creates a DependencyTool.
func NewDependencyTool(tables *compliance.Tables) *DependencyTool {
	return &DependencyTool{tables: tables}
}

// Definition returns the MCP tool definition for registration.
func (t *DependencyTool) Definition() mcp.Tool {
	return mcp.NewTool("check_dependency_direction",
		mcp.WithDescription(
			"Validate that an ACES repo only depends on repos at its own tier or a "+
				"more upstream one. Non-ACES dependencies are ignored.",
		),
		mcp.WithString("repo_name",
			mcp.Required(),
			mcp.Description("ACES repo name, e.g. 'aces-runtime'."),
		),
		mcp.WithArray("dependencies",
			mcp.Required(),
			mcp.Description("Names of the repo's dependencies."),
			mcp.WithStringItems(),
		),
	)
}

// Handle processes the check_dependency_direction tool call.
func (t *DependencyTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, errResult := requireString(req, "repo_name", "provide the ACES repo name")
	if errResult != nil {
		return errResult, nil
	}

	var deps []string
	for _, d := range req.GetStringSlice("dependencies", nil) {
		if d = strings.TrimSpace(d); d != "" {
			deps = append(deps, d)
		}
	}

	return mcp.NewToolResultText(t.tables.CheckDependencies(repo, deps).String()), nil
}
