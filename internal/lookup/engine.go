package lookup

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/aces-framework/aces-governance/internal/docs"
)

// Engine runs lookups against a governance root. It holds no state besides
// the root; every call re-reads the documents it needs.
type Engine struct {
	root *docs.Root
}

// NewEngine creates an Engine over root.
func NewEngine(root *docs.Root) *Engine {
	return &Engine{root: root}
}

// Root returns the governance root the engine reads from.
func (e *Engine) Root() *docs.Root { return e.root }

// ListADRs renders every numbered decision record as
// "- <stem>: <title> [<status>]".
func (e *Engine) ListADRs() (string, error) {
	adrs, err := e.root.ADRs()
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(adrs))
	for _, a := range adrs {
		content, err := docs.ReadFile(a.Path)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("- %s: %s [%s]",
			a.Stem, docs.DocumentTitle(content, a.Stem), docs.ADRStatus(content)))
	}

	if len(lines) == 0 {
		return "No ADRs found.", nil
	}
	return strings.Join(lines, "\n"), nil
}

// ADR resolves identifier as a zero-padded ADR number first, then as a
// case-insensitive keyword over ADR content.
func (e *Engine) ADR(identifier string) (Outcome, error) {
	prefix := zeroPad(strings.TrimSpace(identifier), 4)
	if adr, ok, err := e.root.FindADR(prefix); err != nil {
		return Outcome{}, err
	} else if ok {
		content, err := docs.ReadFile(adr.Path)
		if err != nil {
			return Outcome{}, err
		}
		return found(content), nil
	}

	adrs, err := e.root.ADRs()
	if err != nil {
		return Outcome{}, err
	}

	query := strings.ToLower(identifier)
	var (
		labels   []string
		contents []string
	)
	for _, a := range adrs {
		content, err := docs.ReadFile(a.Path)
		if err != nil {
			return Outcome{}, err
		}
		if strings.Contains(strings.ToLower(content), query) {
			labels = append(labels, fmt.Sprintf("%s: %s", a.Stem, docs.DocumentTitle(content, a.Stem)))
			contents = append(contents, content)
		}
	}

	switch len(labels) {
	case 0:
		return notFound(fmt.Sprintf("No ADR found matching '%s'.", identifier)), nil
	case 1:
		return found(contents[0]), nil
	default:
		return ambiguous("Multiple ADRs match:", labels, ""), nil
	}
}

var sectionNumberRe = regexp.MustCompile(`^(\d+)\.`)

// Standard resolves section against STANDARDS.md: an exact section number
// ("13" matches "13. Dependency Management"), then a keyword search over
// section titles and bodies.
func (e *Engine) Standard(section string) (Outcome, error) {
	content, err := e.root.Read(docs.StandardsFile)
	if err != nil {
		return Outcome{}, err
	}
	sections := docs.ParseSections(content, 2).All()

	if want, err := strconv.Atoi(strings.TrimSpace(section)); err == nil {
		for _, s := range sections {
			m := sectionNumberRe.FindStringSubmatch(s.Title)
			if m == nil {
				continue
			}
			if got, err := strconv.Atoi(m[1]); err == nil && got == want {
				return found(s.Body), nil
			}
		}
	}

	return keywordSections(sections, section, "Refine your query or use a section number."), nil
}

// Architecture resolves a keyword against ARCHITECTURE.md sections.
func (e *Engine) Architecture(section string) (Outcome, error) {
	content, err := e.root.Read(docs.ArchitectureFile)
	if err != nil {
		return Outcome{}, err
	}
	return keywordSections(docs.ParseSections(content, 2).All(), section, ""), nil
}

func keywordSections(sections []docs.Section, query, hint string) Outcome {
	q := strings.ToLower(query)
	var matches []docs.Section
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s.Title), q) || strings.Contains(strings.ToLower(s.Body), q) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return notFound(fmt.Sprintf("No section found matching '%s'.", query))
	case 1:
		return found(matches[0].Body)
	}

	titles := make([]string, len(matches))
	for i, m := range matches {
		titles[i] = m.Title
	}
	return ambiguous("Multiple sections match:", titles, hint)
}

// TemplateListQuery is the pseudo-name that lists every template.
const TemplateListQuery = "list"

// Template returns a template by relative path, or by case-insensitive
// substring of its file name. "list" enumerates all templates.
func (e *Engine) Template(name string) (Outcome, error) {
	all, err := e.root.Templates()
	if err != nil {
		return Outcome{}, err
	}

	if strings.EqualFold(name, TemplateListQuery) {
		if len(all) == 0 {
			return notFound("No templates found."), nil
		}
		var b strings.Builder
		b.WriteString("Available templates:")
		for _, rel := range all {
			b.WriteString("\n- ")
			b.WriteString(rel)
		}
		return found(b.String()), nil
	}

	if path, ok := e.root.TemplatePath(name); ok {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			content, err := docs.ReadFile(path)
			if err != nil {
				return Outcome{}, err
			}
			return found(content), nil
		}
	}

	q := strings.ToLower(name)
	var matches []string
	for _, rel := range all {
		if strings.Contains(strings.ToLower(filepath.Base(filepath.FromSlash(rel))), q) {
			matches = append(matches, rel)
		}
	}

	switch len(matches) {
	case 0:
		return notFound(fmt.Sprintf(
			"Template '%s' not found. Use get_template('list') to see available templates.", name)), nil
	case 1:
		path, _ := e.root.TemplatePath(matches[0])
		content, err := docs.ReadFile(path)
		if err != nil {
			return Outcome{}, err
		}
		return found(content), nil
	default:
		return ambiguous("Multiple templates match:", matches, ""), nil
	}
}

// zeroPad left-pads s with zeros to width.
func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
