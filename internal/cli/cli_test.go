package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aces-framework/aces-governance/internal/govtest"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck_CompliantRepo(t *testing.T) {
	gov := govtest.NewGovernanceRepo(t)
	repo := govtest.NewTargetRepo(t, "aces-testpkg", govtest.PythonRepoFiles())

	out, _, err := runCLI(t, "check", repo, "--type", "python", "--governance-repo", gov)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Compliance Report\nRepo: aces-testpkg (python)\n"))
	assert.Contains(t, out, "PASS: mypy strict mode enabled\n")
}

func TestCheck_FailuresExitNonZero(t *testing.T) {
	gov := govtest.NewGovernanceRepo(t)
	repo := govtest.NewTargetRepo(t, "aces-testcrate", govtest.RustRepoFiles())
	govtest.Remove(t, repo, "LICENSE")

	out, _, err := runCLI(t, "check", repo, "--type", "rust", "--governance-repo", gov)

	assert.Equal(t, ExitFindings, ExitCode(err))
	assert.Contains(t, out, "## Issues (1)\nFAIL: LICENSE missing\n")
}

func TestCheck_WarningsAlonePass(t *testing.T) {
	gov := govtest.NewGovernanceRepo(t)
	repo := govtest.NewTargetRepo(t, "testcrate", govtest.RustRepoFiles())

	out, _, err := runCLI(t, "check", repo, "-t", "rust", "--governance-repo", gov)

	require.NoError(t, err)
	assert.Contains(t, out, "WARN: Repo name 'testcrate' does not start with 'aces-'")
}

func TestCheck_InvalidInput(t *testing.T) {
	gov := govtest.NewGovernanceRepo(t)

	_, stderr, err := runCLI(t, "check", t.TempDir(), "--type", "go", "--governance-repo", gov)
	assert.Equal(t, ExitInvalid, ExitCode(err))
	assert.Equal(t, "Invalid repo_type: go. Must be rust, python, or governance.\n", stderr)

	missing := filepath.Join(t.TempDir(), "gone")
	_, stderr, err = runCLI(t, "check", missing, "--type", "rust", "--governance-repo", gov)
	assert.Equal(t, ExitInvalid, ExitCode(err))
	assert.Equal(t, "Directory not found: "+missing+"\n", stderr)
}

func TestCheck_TypeIsRequired(t *testing.T) {
	gov := govtest.NewGovernanceRepo(t)
	repo := govtest.NewTargetRepo(t, "aces-testcrate", govtest.RustRepoFiles())

	out, _, err := runCLI(t, "check", repo, "--governance-repo", gov)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "type" not set`)
	assert.Equal(t, ExitFindings, ExitCode(err))
	assert.NotContains(t, out, "# Compliance Report")
}

func TestCheck_BadGovernanceRepo(t *testing.T) {
	_, _, err := runCLI(t, "check", t.TempDir(), "--type", "rust", "--governance-repo", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STANDARDS.md")
}

func TestDeps(t *testing.T) {
	out, _, err := runCLI(t, "deps", "aces-runtime", "aces-schema", "tokio")
	require.NoError(t, err)
	assert.Equal(t, "All ACES dependencies follow the architecture DAG.\nOK: aces-schema (tier 1)\n", out)

	out, _, err = runCLI(t, "deps", "aces-schema", "aces-cli")
	assert.Equal(t, ExitFindings, ExitCode(err))
	assert.Contains(t, out, "VIOLATION: aces-schema (tier 1) depends on aces-cli (tier 5)")

	out, _, err = runCLI(t, "deps", "aces-unknown")
	assert.Equal(t, ExitInvalid, ExitCode(err))
	assert.True(t, strings.HasPrefix(out, "Unknown repo: aces-unknown. Known repos: aces, "))
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "aces-governance vdev\n", out)
}

func TestConfigFileMustExist(t *testing.T) {
	_, _, err := runCLI(t, "version", "--config", filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
	assert.Equal(t, ExitFindings, ExitCode(err))
}

func TestColorLine(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	assert.Contains(t, colorLine("FAIL: LICENSE missing"), "\x1b[")
	assert.Equal(t, "plain text", colorLine("plain text"))
}
