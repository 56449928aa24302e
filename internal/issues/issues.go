// Package issues files ADR proposals as tracker issues through the gh CLI.
//
// Nothing is written to the governance repository. The next ADR number is
// computed from the existing records and only appears in the issue body.
package issues

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aces-framework/aces-governance/internal/docs"
	"github.com/aces-framework/aces-governance/internal/logger"
)

const (
	DefaultRepo    = "aces-framework/aces"
	DefaultLabel   = "governance"
	DefaultCommand = "gh"
	DefaultTimeout = 30 * time.Second

	// TitlePrefix is prepended to the proposal title in the issue title.
	TitlePrefix = "ADR Proposal: "
)

// Options configures where and how proposals are filed. Zero fields take
// the defaults above.
type Options struct {
	Repo    string
	Label   string
	Command string
	Timeout time.Duration
}

// Filer formats proposal bodies and hands them to the issue CLI. Each
// call runs the CLI exactly once; a timed-out call is not retried because
// issue creation is not idempotent.
type Filer struct {
	root   *docs.Root
	runner Runner
	opts   Options
	log    *slog.Logger
}

// NewFiler creates a Filer. A nil runner uses ExecRunner.
func NewFiler(root *docs.Root, runner Runner, opts Options) *Filer {
	if runner == nil {
		runner = ExecRunner{}
	}
	if opts.Repo == "" {
		opts.Repo = DefaultRepo
	}
	if opts.Label == "" {
		opts.Label = DefaultLabel
	}
	if opts.Command == "" {
		opts.Command = DefaultCommand
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Filer{root: root, runner: runner, opts: opts, log: logger.ForComponent("issues")}
}

// Options returns the effective options.
func (f *Filer) Options() Options { return f.opts }

// NextNumber returns the number the proposal would take.
func (f *Filer) NextNumber() (int, error) {
	adrs, err := f.root.ADRs()
	if err != nil {
		return 0, err
	}
	return docs.NextADRNumber(adrs), nil
}

// Body formats the issue body for proposal number n.
func Body(n int, title, contextText, decision string) string {
	return fmt.Sprintf("## Proposed ADR-%04d: %s\n\n"+
		"### Status\n\nProposed\n\n"+
		"### Context\n\n%s\n\n"+
		"### Decision (sketch)\n\n%s\n\n"+
		"---\n"+
		"*This ADR proposal was created by the ACES Governance MCP agent.\n"+
		"Discuss here, then create the formal ADR once consensus is reached.*",
		n, title, contextText, decision)
}

// Args returns the CLI arguments that file body under title.
func (f *Filer) Args(title, body string) []string {
	return []string{
		"issue", "create",
		"--repo", f.opts.Repo,
		"--title", TitlePrefix + title,
		"--body", body,
		"--label", f.opts.Label,
	}
}

// File creates the issue and returns the CLI's trimmed output, normally
// the issue URL.
func (f *Filer) File(ctx context.Context, title, contextText, decision string) (string, error) {
	n, err := f.NextNumber()
	if err != nil {
		return "", fmt.Errorf("numbering proposal: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	f.log.Debug("filing ADR proposal", "number", n, "repo", f.opts.Repo)
	out, err := f.runner.Run(ctx, f.opts.Command, f.Args(title, Body(n, title, contextText, decision))...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Propose is File rendered as text. Every failure becomes a message.
func (f *Filer) Propose(ctx context.Context, title, contextText, decision string) string {
	out, err := f.File(ctx, title, contextText, decision)
	if err == nil {
		return "Issue created: " + out
	}

	f.log.Warn("ADR proposal not filed", "error", err)

	var failure *ToolFailure
	switch {
	case errors.Is(err, ErrToolMissing):
		return "Error: gh CLI not found. Install from https://cli.github.com"
	case errors.Is(err, ErrTimedOut):
		return "Error: gh command timed out."
	case errors.As(err, &failure):
		return "Error creating issue: " + failure.Error()
	}
	return "Error creating issue: " + err.Error()
}
