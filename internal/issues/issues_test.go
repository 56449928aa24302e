package issues

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/aces-framework/aces-governance/internal/docs"
	"github.com/aces-framework/aces-governance/internal/govtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	name string
	args []string
	out  string
	err  error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		return "", errors.New("no deadline on context")
	}
	f.name = name
	f.args = args
	return f.out, f.err
}

func (f *fakeRunner) flag(name string) string {
	for i := 0; i+1 < len(f.args); i++ {
		if f.args[i] == name {
			return f.args[i+1]
		}
	}
	return ""
}

func newFiler(t *testing.T, r Runner, opts Options) *Filer {
	t.Helper()
	root, err := docs.Open(govtest.NewGovernanceRepo(t))
	require.NoError(t, err)
	return NewFiler(root, r, opts)
}

func TestPropose_NextNumberInBody(t *testing.T) {
	r := &fakeRunner{out: "https://github.com/aces-framework/aces/issues/42\n"}
	f := newFiler(t, r, Options{})

	got := f.Propose(context.Background(), "Use Arrow", "Columnar data.", "Adopt Arrow IPC.")

	assert.Equal(t, "Issue created: https://github.com/aces-framework/aces/issues/42", got)
	assert.Equal(t, "gh", r.name)
	assert.Equal(t, []string{"issue", "create"}, r.args[:2])
	assert.Equal(t, "aces-framework/aces", r.flag("--repo"))
	assert.Equal(t, "ADR Proposal: Use Arrow", r.flag("--title"))
	assert.Equal(t, "governance", r.flag("--label"))

	body := r.flag("--body")
	assert.True(t, strings.HasPrefix(body, "## Proposed ADR-0020: Use Arrow\n\n### Status\n\nProposed\n\n"))
	assert.Contains(t, body, "### Context\n\nColumnar data.\n\n")
	assert.Contains(t, body, "### Decision (sketch)\n\nAdopt Arrow IPC.\n\n---\n")
}

func TestPropose_NumberIgnoresText(t *testing.T) {
	r := &fakeRunner{out: "ok"}
	f := newFiler(t, r, Options{})

	f.Propose(context.Background(), "ADR-0001 again", "See 0019 and 9999.", "0042")

	assert.Contains(t, r.flag("--body"), "ADR-0020:")
}

func TestPropose_FirstProposal(t *testing.T) {
	dir := govtest.NewGovernanceRepo(t)
	govtest.Remove(t, dir, "adrs/0001-rust-core-python-periphery.md")
	govtest.Remove(t, dir, "adrs/0019-formal-methods-for-critical-components.md")
	root, err := docs.Open(dir)
	require.NoError(t, err)
	r := &fakeRunner{out: "ok"}

	NewFiler(root, r, Options{}).Propose(context.Background(), "T", "C", "D")

	assert.Contains(t, r.flag("--body"), "## Proposed ADR-0001: T")
}

func TestPropose_CustomOptions(t *testing.T) {
	r := &fakeRunner{out: "ok"}
	f := newFiler(t, r, Options{Repo: "acme/gov", Label: "adr", Command: "/usr/local/bin/gh"})

	f.Propose(context.Background(), "T", "C", "D")

	assert.Equal(t, "/usr/local/bin/gh", r.name)
	assert.Equal(t, "acme/gov", r.flag("--repo"))
	assert.Equal(t, "adr", r.flag("--label"))
	assert.Equal(t, DefaultTimeout, f.Options().Timeout)
}

func TestPropose_ErrorTexts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing", ErrToolMissing, "Error: gh CLI not found. Install from https://cli.github.com"},
		{"timeout", ErrTimedOut, "Error: gh command timed out."},
		{"failure", &ToolFailure{Stderr: "label not found\n", Err: errors.New("exit status 1")}, "Error creating issue: label not found"},
		{"failure without stderr", &ToolFailure{Err: errors.New("exit status 1")}, "Error creating issue: exit status 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFiler(t, &fakeRunner{err: tt.err}, Options{})
			assert.Equal(t, tt.want, f.Propose(context.Background(), "T", "C", "D"))
		})
	}
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)

	out, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo https://example.test/issues/1")

	require.NoError(t, err)
	assert.Equal(t, "https://example.test/issues/1\n", out)
}

func TestExecRunner_Failure(t *testing.T) {
	requireShell(t)

	_, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")

	var failure *ToolFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "boom\n", failure.Stderr)
	assert.Equal(t, "boom", failure.Error())
	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestExecRunner_Missing(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), "aces-definitely-not-a-command")

	assert.ErrorIs(t, err, ErrToolMissing)
}

func TestExecRunner_Timeout(t *testing.T) {
	requireShell(t)
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := ExecRunner{}.Run(ctx, "sleep", "5")

	assert.ErrorIs(t, err, ErrTimedOut)
	assert.Less(t, time.Since(start), 4*time.Second)
}
