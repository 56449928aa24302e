// Package lookup answers governance queries: decision records by number
// or keyword, standards and architecture sections, templates, full-text
// search and lesson coverage.
//
// Every query resolves to an Outcome. Absence and ambiguity are ordinary
// outcomes, not errors; errors are reserved for unreadable files.
package lookup

import "strings"

// Kind tags an Outcome.
type Kind int

const (
	Found Kind = iota
	Ambiguous
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case Ambiguous:
		return "ambiguous"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Outcome is the result of a lookup before it is rendered as text.
type Outcome struct {
	Kind Kind
	// Content is the matched document or section (Found).
	Content string
	// Candidates are the disambiguation lines (Ambiguous), without the
	// leading "- ".
	Candidates []string
	// Message is the header for Ambiguous, or the full text for
	// NotFound.
	Message string
	// Hint is appended after the candidate list.
	Hint string
}

func found(content string) Outcome { return Outcome{Kind: Found, Content: content} }

func notFound(msg string) Outcome { return Outcome{Kind: NotFound, Message: msg} }

func ambiguous(header string, candidates []string, hint string) Outcome {
	return Outcome{Kind: Ambiguous, Message: header, Candidates: candidates, Hint: hint}
}

// Text renders the outcome for a conversational caller.
func (o Outcome) Text() string {
	switch o.Kind {
	case Found:
		return o.Content
	case Ambiguous:
		var b strings.Builder
		b.WriteString(o.Message)
		for _, c := range o.Candidates {
			b.WriteString("\n- ")
			b.WriteString(c)
		}
		if o.Hint != "" {
			b.WriteString("\n\n")
			b.WriteString(o.Hint)
		}
		return b.String()
	default:
		return o.Message
	}
}
