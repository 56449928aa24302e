// Package resources implements MCP resource handlers for the governance
// documents.
//
// Resources are read-only views the host can attach as context without a
// tool call. They use governance:// URIs.
package resources

import (
	"context"
	"fmt"

	"github.com/aces-framework/aces-governance/internal/docs"
	"github.com/aces-framework/aces-governance/internal/lookup"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	StandardsURI    = "governance://standards"
	ArchitectureURI = "governance://architecture"
	ADRIndexURI     = "governance://adrs"
)

// Handler manages governance resource endpoints.
type Handler struct {
	engine *lookup.Engine
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(engine *lookup.Engine) *Handler {
	return &Handler{engine: engine}
}

// StandardsResource returns the MCP resource definition for STANDARDS.md.
func (h *Handler) StandardsResource() mcp.Resource {
	return mcp.NewResource(
		StandardsURI,
		"ACES Standards",
		mcp.WithResourceDescription("The full ACES STANDARDS.md document"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleStandards returns STANDARDS.md verbatim.
func (h *Handler) HandleStandards(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return h.document(req.Params.URI, docs.StandardsFile), nil
}

// ArchitectureResource returns the MCP resource definition for
// ARCHITECTURE.md.
func (h *Handler) ArchitectureResource() mcp.Resource {
	return mcp.NewResource(
		ArchitectureURI,
		"ACES Architecture",
		mcp.WithResourceDescription("The full ACES ARCHITECTURE.md document"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleArchitecture returns ARCHITECTURE.md verbatim.
func (h *Handler) HandleArchitecture(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return h.document(req.Params.URI, docs.ArchitectureFile), nil
}

// ADRIndexResource returns the MCP resource definition for the ADR index.
func (h *Handler) ADRIndexResource() mcp.Resource {
	return mcp.NewResource(
		ADRIndexURI,
		"ACES ADR Index",
		mcp.WithResourceDescription("Every Architecture Decision Record with title and status"),
		mcp.WithMIMEType("text/plain"),
	)
}

// HandleADRIndex returns the same listing as the list_adrs tool.
func (h *Handler) HandleADRIndex(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := h.engine.ListADRs()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	return textResource(req.Params.URI, "text/plain", text), nil
}

func (h *Handler) document(uri, rel string) []mcp.ResourceContents {
	content, err := h.engine.Root().Read(rel)
	if err != nil {
		return errorResource(uri, err.Error())
	}
	return textResource(uri, "text/markdown", content)
}

func textResource(uri, mimeType, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		},
	}
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return textResource(uri, "text/plain", fmt.Sprintf("Error: %s", message))
}
