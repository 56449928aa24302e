package lookup

import (
	"os"
	"strings"

	"github.com/aces-framework/aces-governance/internal/docs"
)

// minTermHits is how many key terms a section must contain to count as
// covering a lesson.
const minTermHits = 2

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "should": true, "must": true,
	"not": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"of": true, "and": true, "or": true, "with": true, "that": true,
	"this": true, "it": true, "all": true, "no": true, "do": true,
}

// keyTerms lowercases lesson, splits on whitespace and drops stop words.
// Duplicates are removed.
func keyTerms(lesson string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(lesson)) {
		if stopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}
	return terms
}

// CoveringSections returns, in source order, the titles of STANDARDS.md
// sections whose body contains at least two of the lesson's key terms.
func (e *Engine) CoveringSections(lesson string) ([]string, error) {
	content, err := e.root.Read(docs.StandardsFile)
	if err != nil {
		return nil, err
	}

	terms := keyTerms(lesson)
	var titles []string
	for _, s := range docs.ParseSections(content, 2).All() {
		body := strings.ToLower(s.Body)
		hits := 0
		for _, term := range terms {
			if strings.Contains(body, term) {
				hits++
			}
		}
		if hits >= minTermHits {
			titles = append(titles, s.Title)
		}
	}
	return titles, nil
}

// LessonCoverage renders CoveringSections as advice on whether the lesson
// should become a standard.
func (e *Engine) LessonCoverage(lesson string) (string, error) {
	if !e.root.Exists(docs.StandardsFile) {
		return "Cannot check: STANDARDS.md not found.", nil
	}

	titles, err := e.CoveringSections(lesson)
	if err != nil {
		return "", err
	}

	if len(titles) == 0 {
		return "This lesson is not covered by current standards. " +
			"Consider promoting it to a formal standard in STANDARDS.md " +
			"or proposing an ADR if it involves an architectural decision.", nil
	}

	var b strings.Builder
	b.WriteString("This lesson appears to be already covered in:")
	for _, t := range titles {
		b.WriteString("\n- ")
		b.WriteString(t)
	}
	b.WriteString("\n\nReview these sections to confirm coverage is adequate.")
	return b.String(), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
