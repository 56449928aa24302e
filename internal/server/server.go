// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the lookup engine, compliance
// checker and issue filer over one governance root and registers the
// tools, resources and prompts that use them. No business logic lives here.
package server

import (
	"fmt"

	"github.com/aces-framework/aces-governance/internal/compliance"
	"github.com/aces-framework/aces-governance/internal/config"
	"github.com/aces-framework/aces-governance/internal/docs"
	"github.com/aces-framework/aces-governance/internal/issues"
	"github.com/aces-framework/aces-governance/internal/logger"
	"github.com/aces-framework/aces-governance/internal/lookup"
	"github.com/aces-framework/aces-governance/internal/prompts"
	"github.com/aces-framework/aces-governance/internal/resources"
	"github.com/aces-framework/aces-governance/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Name is the MCP server name.
const Name = "aces-governance"

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server over root. A nil runner files issues with
// the real gh CLI.
func New(root *docs.Root, cfg *config.Config, runner issues.Runner) (*server.MCPServer, error) {
	tables, err := compliance.LoadTables()
	if err != nil {
		return nil, fmt.Errorf("loading compliance rules: %w", err)
	}

	engine := lookup.NewEngine(root)
	checker := compliance.NewChecker(root, tables)
	filer := issues.NewFiler(root, runner, issues.Options{
		Repo:    cfg.IssueRepo,
		Label:   cfg.IssueLabel,
		Command: cfg.GHCommand,
		Timeout: cfg.GHTimeout,
	})

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Lookup tools ---

	listADRsTool := tools.NewListADRsTool(engine)
	s.AddTool(listADRsTool.Definition(), listADRsTool.Handle)

	getADRTool := tools.NewGetADRTool(engine)
	s.AddTool(getADRTool.Definition(), getADRTool.Handle)

	standardTool := tools.NewGetStandardTool(engine)
	s.AddTool(standardTool.Definition(), standardTool.Handle)

	architectureTool := tools.NewGetArchitectureTool(engine)
	s.AddTool(architectureTool.Definition(), architectureTool.Handle)

	searchTool := tools.NewSearchGovernanceTool(engine)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	templateTool := tools.NewGetTemplateTool(engine)
	s.AddTool(templateTool.Definition(), templateTool.Handle)

	lessonTool := tools.NewStandardsUpdateTool(engine)
	s.AddTool(lessonTool.Definition(), lessonTool.Handle)

	// --- Compliance tools ---

	complianceTool := tools.NewComplianceTool(checker)
	s.AddTool(complianceTool.Definition(), complianceTool.Handle)

	dependencyTool := tools.NewDependencyTool(tables)
	s.AddTool(dependencyTool.Definition(), dependencyTool.Handle)

	// --- Issue filing ---

	proposeTool := tools.NewProposeADRTool(filer)
	s.AddTool(proposeTool.Definition(), proposeTool.Handle)

	// --- Resources ---

	rh := resources.NewHandler(engine)
	s.AddResource(rh.StandardsResource(), rh.HandleStandards)
	s.AddResource(rh.ArchitectureResource(), rh.HandleArchitecture)
	s.AddResource(rh.ADRIndexResource(), rh.HandleADRIndex)

	// --- Prompts ---

	reviewPrompt := prompts.NewReviewPrompt()
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	logger.ForComponent("server").Debug("server ready", "root", root.Dir(), "version", Version)
	return s, nil
}

func serverInstructions() string {
	return "ACES Governance Agent. Provides access to project standards, " +
		"architecture decisions (ADRs), templates, and compliance checks " +
		"for the ACES framework. Use this to understand project conventions, " +
		"validate repos against standards, and propose new ADRs.\n\n" +
		"NOTE: All ACES repos must be sibling directories under a shared " +
		"parent (e.g. ~/src/aces/). The governance repo ('aces') must be " +
		"a sibling of the repo you are working in."
}
