// Package govtest builds throwaway governance and target repositories for
// tests. The fixtures mirror the real ACES layout closely enough to drive
// every lookup and compliance rule.
package govtest

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFiles writes each path → content pair under dir, creating parents.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("govtest: mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("govtest: write %s: %v", rel, err)
		}
	}
}

// Remove deletes rel under dir.
func Remove(t *testing.T, dir, rel string) {
	t.Helper()
	if err := os.Remove(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
		t.Fatalf("govtest: remove %s: %v", rel, err)
	}
}

// Standards is the STANDARDS.md fixture.
const Standards = "# ACES Project Standards\n\n" +
	"## 1. Naming Conventions\n\n" +
	"All repos use the prefix `aces-`.\n\n" +
	"## 9. Testing Standards\n\n" +
	"### Test Pyramid\n\nUnit, integration, contract, e2e.\n" +
	"Tests should be written before code (TDD).\n" +
	"Test behavior, not implementation.\n\n" +
	"## 13. Dependency Management\n\n" +
	"NEVER hand-edit dependency versions.\n" +
	"Use `cargo add` for Rust, `uv add` for Python.\n\n" +
	"## 15. Formal Methods\n\n" +
	"Governed by ADR-0019. Four tiers.\n" +
	"TLA+ specs for protocols.\n"

// Architecture is the ARCHITECTURE.md fixture.
const Architecture = "# ACES Architecture\n\n" +
	"## Architecture Principles\n\nParnas decomposition.\n\n" +
	"## Repository Architecture\n\n" +
	"Multi-repo with governance hub.\n\n" +
	"## Dependency Graph\n\n" +
	"aces-schema has zero upstream dependencies.\n\n" +
	"## Interface Boundaries\n\n" +
	"Each boundary is a contract.\n"

// ADR0001 and ADR0019 are the decision record fixtures.
const (
	ADR0001 = "# ADR-0001: Rust Core + Python Periphery\n\n" +
		"## Status\n\nAccepted\n\n" +
		"## Context\n\nWe need two languages.\n\n" +
		"## Decision\n\nRust core + Python periphery.\n\n" +
		"## Consequences\n\nTwo ecosystems to maintain.\n"

	ADR0019 = "# ADR-0019: Formal Methods for Critical Components\n\n" +
		"## Status\n\nAccepted\n\n" +
		"## Context\n\nAgentic tools make formal methods viable.\n\n" +
		"## Decision\n\nFour tiers of formal methods.\n\n" +
		"## Consequences\n\nStronger guarantees for critical code.\n"
)

// MarkdownLint is the governance markdownlint template content.
const MarkdownLint = "default: true\n"

const (
	rustCI = "name: CI\njobs:\n  check:\n" +
		"    steps:\n" +
		"      - run: cargo fmt --check\n" +
		"      - run: cargo clippy -- -D warnings\n" +
		"      - run: cargo test\n" +
		"      - run: cargo doc --no-deps\n" +
		"      - run: cargo deny check\n"

	pythonCI = "name: CI\njobs:\n  check:\n" +
		"    steps:\n" +
		"      - run: uv run ruff check .\n" +
		"      - run: uv run ruff format --check .\n" +
		"      - run: uv run mypy --strict .\n" +
		"      - run: uv run pytest\n" +
		"      - run: uv run pip-audit\n"

	governanceCI = "name: CI\njobs:\n  lint:\n" +
		"    steps:\n      - run: pre-commit run --all-files\n"

	mcpJSON = `{"mcpServers":{"aces-governance":{"command":"aces-governance","args":["serve"]}}}` + "\n"
)

// GovernanceFiles returns the full governance repo fixture.
func GovernanceFiles() map[string]string {
	return map[string]string{
		"adrs/TEMPLATE.md":                                    "# ADR-XXXX: Title\n\n## Status\n\n",
		"adrs/0001-rust-core-python-periphery.md":             ADR0001,
		"adrs/0019-formal-methods-for-critical-components.md": ADR0019,

		"STANDARDS.md":    Standards,
		"ARCHITECTURE.md": Architecture,

		"templates/Cargo.toml":         "[package]\nname = \"aces-REPO_NAME\"\nversion = \"0.1.0\"\n",
		"templates/pyproject.toml":     "[project]\nname = \"aces_REPO_NAME\"\nversion = \"0.1.0\"\n",
		"templates/CLAUDE.md":          "# ACES Project Instructions\n",
		"templates/CHANGELOG.md":       "# Changelog\n\n## [Unreleased]\n",
		"templates/LICENSE":            "Apache License 2.0\n",
		"templates/markdownlint.yaml":  MarkdownLint,
		"templates/SECURITY.md":        "# Security Policy\n\nReport via GitHub Security Advisories.\n",
		"templates/ci-rust.yaml":       rustCI,
		"templates/ci-python.yaml":     pythonCI,
		"templates/ci-governance.yaml": governanceCI,
		"templates/README.md":          "# ACES Repo Templates\n",

		"templates/ISSUE_TEMPLATE/bug-report.md":      "---\nname: Bug Report\n---\n",
		"templates/ISSUE_TEMPLATE/feature-request.md": "---\nname: Feature Request\n---\n",
		"templates/ISSUE_TEMPLATE/config.yml":         "blank_issues_enabled: true\n",
	}
}

// NewGovernanceRepo creates the governance fixture under a temp dir and
// returns its path.
func NewGovernanceRepo(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "aces")
	WriteFiles(t, dir, GovernanceFiles())
	return dir
}

func commonTargetFiles() map[string]string {
	return map[string]string{
		"LICENSE":                 "Apache License 2.0\n",
		"CHANGELOG.md":            "# Changelog\n\n## [Unreleased]\n",
		"CLAUDE.md":               "# ACES Project Instructions\n",
		"SECURITY.md":             "# Security Policy\n\nReport via GitHub.\n",
		".markdownlint.yaml":      MarkdownLint,
		".pre-commit-config.yaml": "repos: []\n",
		".gitignore":              "/target/\n",
		".mcp.json":               mcpJSON,

		".github/pull_request_template.md":     "## Description\n",
		".github/ISSUE_TEMPLATE/bug-report.md": "---\nname: Bug\n---\n",
		".github/ISSUE_TEMPLATE/config.yml":    "blank_issues_enabled: true\n",
	}
}

// RustRepoFiles returns a target repo that passes every rust rule.
func RustRepoFiles() map[string]string {
	files := commonTargetFiles()
	files["Cargo.toml"] = "[package]\nname = \"aces-testcrate\"\nversion = \"0.1.0\"\nlicense = \"Apache-2.0\"\n"
	files["cargo-deny.toml"] = "[licenses]\n"
	files["rust-toolchain.toml"] = "[toolchain]\nchannel = \"1.83\"\n"
	files["src/lib.rs"] = "#![deny(missing_docs)]\n//! Test crate.\n"
	files[".github/workflows/ci.yaml"] = rustCI
	return files
}

// PythonRepoFiles returns a target repo that passes every python rule.
func PythonRepoFiles() map[string]string {
	files := commonTargetFiles()
	files[".gitignore"] = "__pycache__/\n"
	files["pyproject.toml"] = "[project]\nname = \"aces_testpkg\"\nversion = \"0.1.0\"\nlicense = \"Apache-2.0\"\n\n" +
		"[tool.mypy]\nstrict = true\n"
	files[".github/workflows/ci.yaml"] = pythonCI
	return files
}

// GovernanceRepoFiles returns a target repo that passes every governance rule.
func GovernanceRepoFiles() map[string]string {
	files := commonTargetFiles()
	delete(files, ".gitignore")
	delete(files, ".mcp.json")
	delete(files, ".github/ISSUE_TEMPLATE/bug-report.md")
	files[".github/ISSUE_TEMPLATE/adr-proposal.md"] = "---\nname: ADR Proposal\n---\n"
	files[".github/ISSUE_TEMPLATE/rfc-proposal.md"] = "---\nname: RFC Proposal\n---\n"
	files[".github/workflows/ci.yaml"] = governanceCI
	return files
}

// NewTargetRepo writes files into a new directory called name.
func NewTargetRepo(t *testing.T, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("govtest: mkdir %s: %v", dir, err)
	}
	WriteFiles(t, dir, files)
	return dir
}
