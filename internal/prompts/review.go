// Package prompts implements MCP prompt handlers.
//
// Prompts are user-triggered workflows (like slash commands) that tell the
// AI which governance tools to run and how to present the results.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the governance-review MCP prompt.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("governance-review",
		mcp.WithPromptDescription(
			"Review an ACES repository against governance: compliance report, "+
				"dependency direction and a prioritized list of fixes.",
		),
		mcp.WithArgument("repo_path",
			mcp.ArgumentDescription("Path to the repository to review"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("repo_type",
			mcp.ArgumentDescription("Project type: rust, python, or governance. Default: rust"),
		),
	)
}

// Handle processes the governance-review prompt request.
func (p *ReviewPrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	repoPath := "."
	repoType := "rust"
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["repo_path"]; ok && v != "" {
			repoPath = v
		}
		if v, ok := args["repo_type"]; ok && v != "" {
			repoType = v
		}
	}

	return &mcp.GetPromptResult{
		Description: "ACES Governance Review",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please review the ACES repository at `%s` (type: %s).\n\n"+
						"1. Run `check_repo_compliance` with repo_path=%q and repo_type=%q\n"+
						"2. Read its manifest (Cargo.toml or pyproject.toml), collect the aces-* "+
						"dependencies and run `check_dependency_direction`\n"+
						"3. For every FAIL or WARN, cite the governing section with `get_standard` "+
						"or `search_governance`, and fetch the matching file with `get_template` "+
						"where one exists\n"+
						"4. Summarize: blocking failures first, then warnings, then a short list of "+
						"concrete fixes",
					repoPath, repoType, repoPath, repoType,
				)),
			},
		},
	}, nil
}
