package lookup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aces-framework/aces-governance/internal/docs"
)

// Excerpt is one search hit: the first matching line of a document with a
// line of context on either side.
type Excerpt struct {
	// Path is relative to the governance root, slash-separated.
	Path string
	// Line is the 1-based line number of the match.
	Line int
	Text string
}

func (x Excerpt) String() string {
	return fmt.Sprintf("**%s** (line %d):\n```\n%s\n```", x.Path, x.Line, x.Text)
}

// searchOrder lists the fixed documents scanned before the ADRs.
var searchOrder = []string{docs.StandardsFile, docs.ArchitectureFile, docs.TemplatesReadme}

// SearchExcerpts scans the standards, architecture and templates readme,
// then every ADR in file name order, returning at most one excerpt per
// document. Missing documents are skipped.
func (e *Engine) SearchExcerpts(query string) ([]Excerpt, error) {
	paths := make([]string, 0, len(searchOrder))
	for _, rel := range searchOrder {
		paths = append(paths, e.root.Path(rel))
	}

	adrs, err := e.root.ADRs()
	if err != nil {
		return nil, err
	}
	for _, a := range adrs {
		paths = append(paths, a.Path)
	}

	q := strings.ToLower(query)
	var out []Excerpt
	for _, path := range paths {
		if !exists(path) {
			continue
		}
		content, err := docs.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(strings.ToLower(content), q) {
			continue
		}

		lines := docs.Lines(content)
		for i, line := range lines {
			if !strings.Contains(strings.ToLower(line), q) {
				continue
			}
			start := max(0, i-1)
			end := min(len(lines), i+2)
			rel, err := filepath.Rel(e.root.Dir(), path)
			if err != nil {
				rel = path
			}
			out = append(out, Excerpt{
				Path: filepath.ToSlash(rel),
				Line: i + 1,
				Text: strings.Join(lines[start:end], "\n"),
			})
			break
		}
	}
	return out, nil
}

// Search renders SearchExcerpts, or a "no results" line.
func (e *Engine) Search(query string) (string, error) {
	excerpts, err := e.SearchExcerpts(query)
	if err != nil {
		return "", err
	}
	if len(excerpts) == 0 {
		return fmt.Sprintf("No results for '%s'.", query), nil
	}

	blocks := make([]string, len(excerpts))
	for i, x := range excerpts {
		blocks[i] = x.String()
	}
	return strings.Join(blocks, "\n\n"), nil
}
