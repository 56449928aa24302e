package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aces-framework/aces-governance/internal/govtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections_DistinctTitles(t *testing.T) {
	content := "# Doc\n\npreamble\n\n## First\n\nbody one\n\n## Second\n\nbody two\n"

	s := ParseSections(content, 2)

	require.Equal(t, 2, s.Len())
	all := s.All()
	assert.Equal(t, "First", all[0].Title)
	assert.Equal(t, "## First\n\nbody one", all[0].Body)
	assert.Equal(t, 0, all[0].Order)
	assert.Equal(t, "Second", all[1].Title)
	assert.Equal(t, "## Second\n\nbody two", all[1].Body)
	assert.Equal(t, 1, all[1].Order)
}

// Duplicate titles collapse to the last occurrence. Existing documents
// depend on this.
func TestParseSections_DuplicateTitleLastWriteWins(t *testing.T) {
	content := "## Same\n\nold body\n\n## Other\n\nx\n\n## Same\n\nnew body\n"

	s := ParseSections(content, 2)

	require.Equal(t, 2, s.Len())
	sec, ok := s.Get("Same")
	require.True(t, ok)
	assert.Equal(t, "## Same\n\nnew body", sec.Body)
	assert.NotContains(t, sec.Body, "old body")
	assert.Equal(t, "Same", s.All()[0].Title, "first position is kept")
}

func TestParseSections_SubheadingsAreBody(t *testing.T) {
	s := ParseSections(govtest.Standards, 2)

	sec, ok := s.Get("9. Testing Standards")
	require.True(t, ok)
	assert.Contains(t, sec.Body, "### Test Pyramid")
	assert.Contains(t, sec.Body, "Tests should be written before code")
	assert.Equal(t, 4, s.Len())
}

func TestParseSections_PreambleDropped(t *testing.T) {
	s := ParseSections("intro\n\n### deep\n\nno level-2 heading here\n", 2)
	assert.Equal(t, 0, s.Len())
}

func TestParseSections_LevelThree(t *testing.T) {
	s := ParseSections("## Outer\n### Inner\ntext\n", 3)
	require.Equal(t, 1, s.Len())
	sec, _ := s.Get("Inner")
	assert.Equal(t, "### Inner\ntext", sec.Body)
}

func TestParseSections_CRLF(t *testing.T) {
	s := ParseSections("## A\r\nline\r\n## B\r\n", 2)
	require.Equal(t, 2, s.Len())
	sec, _ := s.Get("A")
	assert.Equal(t, "## A\nline", sec.Body)
}

func TestDocumentTitleAndStatus(t *testing.T) {
	assert.Equal(t, "ADR-0001: Rust Core + Python Periphery", DocumentTitle(govtest.ADR0001, "x"))
	assert.Equal(t, "fallback", DocumentTitle("no heading", "fallback"))
	assert.Equal(t, "Accepted", ADRStatus(govtest.ADR0001))
	assert.Equal(t, "Unknown", ADRStatus("# T\n\n## Context\n"))
	assert.Equal(t, "Proposed", ADRStatus("## Status\r\n\r\nProposed\r\n"))
}

func TestOpen_Valid(t *testing.T) {
	dir := govtest.NewGovernanceRepo(t)

	root, err := Open(dir)

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(root.Dir()))
	assert.True(t, root.Exists(StandardsFile))
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))

	require.ErrorIs(t, err, ErrNotGovernanceRoot)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "ACES_GOVERNANCE_REPO")
	assert.Contains(t, err.Error(), "aces/           ← governance repo")
}

func TestOpen_MissingEntries(t *testing.T) {
	dir := t.TempDir()
	govtest.WriteFiles(t, dir, map[string]string{"STANDARDS.md": "# S\n"})

	_, err := Open(dir)

	require.ErrorIs(t, err, ErrNotGovernanceRoot)
	assert.Contains(t, err.Error(), "missing: ARCHITECTURE.md, adrs")
	assert.Contains(t, err.Error(), "siblings")
}

func TestResolve_Override(t *testing.T) {
	dir := govtest.NewGovernanceRepo(t)

	root, err := Resolve(dir)

	require.NoError(t, err)
	abs, _ := filepath.Abs(dir)
	assert.Equal(t, abs, root.Dir())
}

func TestADRs_ExcludesTemplateAndSorts(t *testing.T) {
	root, err := Open(govtest.NewGovernanceRepo(t))
	require.NoError(t, err)

	adrs, err := root.ADRs()

	require.NoError(t, err)
	require.Len(t, adrs, 2)
	assert.Equal(t, "0001-rust-core-python-periphery", adrs[0].Stem)
	assert.Equal(t, 1, adrs[0].Number)
	assert.Equal(t, 19, adrs[1].Number)
	assert.Equal(t, 20, NextADRNumber(adrs))
}

func TestNextADRNumber_Empty(t *testing.T) {
	assert.Equal(t, 1, NextADRNumber(nil))
}

func TestFindADR(t *testing.T) {
	root, err := Open(govtest.NewGovernanceRepo(t))
	require.NoError(t, err)

	adr, ok, err := root.FindADR("0019")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0019-formal-methods-for-critical-components.md", adr.Name)

	_, ok, err = root.FindADR("0002")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTemplates_Recursive(t *testing.T) {
	root, err := Open(govtest.NewGovernanceRepo(t))
	require.NoError(t, err)

	names, err := root.Templates()

	require.NoError(t, err)
	assert.Contains(t, names, "Cargo.toml")
	assert.Contains(t, names, "ISSUE_TEMPLATE/config.yml")
	assert.IsNonDecreasing(t, names)
}

func TestTemplatePath_RejectsEscape(t *testing.T) {
	root, err := Open(govtest.NewGovernanceRepo(t))
	require.NoError(t, err)

	_, ok := root.TemplatePath("../STANDARDS.md")
	assert.False(t, ok)

	p, ok := root.TemplatePath("ISSUE_TEMPLATE/config.yml")
	assert.True(t, ok)
	assert.FileExists(t, p)
}

func TestReadFile_StripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.md")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf# Title\n"), 0o644))

	content, err := ReadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "# Title\n", content)
}
