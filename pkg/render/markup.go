// Package render maps a structured resume plus a block template onto three
// output formats: an HTML document for headless-browser PDF export, LaTeX
// source, and direct vector PDF drawing. All back ends consume the same
// (resume, theme, blocks) triple and share the helpers in this package so
// their output stays visually in sync.
package render

import "strings"

// Inline emphasis tokens. A text field may contain non-nested
// \b ... b\ spans marking bold runs.
const (
	emphOpen  = `\b`
	emphClose = `b\`
)

// Span is a maximal run of text with a single emphasis state.
type Span struct {
	Bold bool
	Text string
}

// ParseEmphasis splits text into plain and bold spans covering the whole
// input in order, with no gaps. Doubled tokens (\\b and b\\, artifacts of
// round-tripping through the marker syntax) are normalized to single tokens
// before scanning. An open token with no matching close token makes the
// remainder of the input, open token included, a single plain span.
//
// Spans are returned unescaped; callers escape each span for the target
// format after extraction, never before.
func ParseEmphasis(text string) []Span {
	s := strings.ReplaceAll(text, `\\b`, emphOpen)
	s = strings.ReplaceAll(s, `b\\`, emphClose)

	var spans []Span
	for len(s) > 0 {
		openAt := strings.Index(s, emphOpen)
		if openAt == -1 {
			spans = append(spans, Span{Text: s})
			break
		}
		if openAt > 0 {
			spans = append(spans, Span{Text: s[:openAt]})
		}
		rest := s[openAt+len(emphOpen):]
		closeAt := strings.Index(rest, emphClose)
		if closeAt == -1 {
			spans = append(spans, Span{Text: s[openAt:]})
			break
		}
		spans = append(spans, Span{Bold: true, Text: rest[:closeAt]})
		s = rest[closeAt+len(emphClose):]
	}
	return spans
}
