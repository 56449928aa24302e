package docs

import (
	"regexp"
	"strings"
)

// Section is one heading-delimited block of a markdown document. Body
// includes the heading line itself.
type Section struct {
	Title string
	Body  string
	Order int
}

// Sections is an ordered title → section mapping.
//
// A repeated title overwrites the earlier body but keeps the position of
// its first occurrence. Governance documents rely on this last-write-wins
// behavior, so it is preserved rather than rejected.
type Sections struct {
	order   []string
	byTitle map[string]Section
}

// Len returns the number of distinct titles.
func (s *Sections) Len() int { return len(s.order) }

// Get returns the section with the given title.
func (s *Sections) Get(title string) (Section, bool) {
	sec, ok := s.byTitle[title]
	return sec, ok
}

// All returns the sections in source order.
func (s *Sections) All() []Section {
	out := make([]Section, 0, len(s.order))
	for _, title := range s.order {
		out = append(out, s.byTitle[title])
	}
	return out
}

func (s *Sections) put(title string, lines []string) {
	body := strings.TrimSpace(strings.Join(lines, "\n"))
	if existing, ok := s.byTitle[title]; ok {
		existing.Body = body
		s.byTitle[title] = existing
		return
	}
	s.byTitle[title] = Section{Title: title, Body: body, Order: len(s.order)}
	s.order = append(s.order, title)
}

// ParseSections splits content at headings of exactly level '#' characters.
// Lines before the first such heading are dropped; deeper headings are
// ordinary body text.
func ParseSections(content string, level int) *Sections {
	prefix := strings.Repeat("#", level) + " "
	out := &Sections{byTitle: make(map[string]Section)}

	var (
		title   string
		current []string
	)
	for _, line := range Lines(content) {
		rest, ok := strings.CutPrefix(line, prefix)
		if ok && rest != "" {
			if title != "" {
				out.put(title, current)
			}
			title = strings.TrimSpace(rest)
			current = []string{line}
			continue
		}
		current = append(current, line)
	}
	if title != "" {
		out.put(title, current)
	}
	return out
}

// Lines splits content into lines without their terminators.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

var (
	titleRe  = regexp.MustCompile(`(?m)^# (.+)$`)
	statusRe = regexp.MustCompile(`(?m)^## Status\s*\n+\s*(\w+)`)
)

// DocumentTitle returns the text of the first level-1 heading, or fallback.
func DocumentTitle(content, fallback string) string {
	m := titleRe.FindStringSubmatch(content)
	if m == nil {
		return fallback
	}
	if t := strings.TrimSpace(m[1]); t != "" {
		return t
	}
	return fallback
}

// ADRStatus returns the first word following a "## Status" heading, or
// "Unknown".
func ADRStatus(content string) string {
	m := statusRe.FindStringSubmatch(strings.ReplaceAll(content, "\r\n", "\n"))
	if m == nil {
		return "Unknown"
	}
	return m[1]
}
