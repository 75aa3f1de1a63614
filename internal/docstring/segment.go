// Package docstring parses free-form docstring text into an ordered sequence
// of typed segments. Docstrings carry no structured markup, so boundaries
// between prose and example code are inferred from the same layout cues a
// human reader uses: REPL prompts, a recognized section header, and sustained
// 4-column indentation. The heuristic is deliberately best-effort; ambiguous
// input degrades to extra text segments rather than failing.
package docstring

import (
	"strings"
)

// Kind classifies a segment as prose or code.
type Kind string

const (
	KindText Kind = "text"
	KindCode Kind = "code"
)

// Segment is one classified unit of a docstring. Consecutive lines of the
// same classification merge into one segment; separate paragraphs and
// recognized section headers stay separate text segments.
type Segment struct {
	Kind    Kind   `json:"type"`
	Content string `json:"content"`
}

// codeIndent is the column width at which an indented line reads as code.
const codeIndent = 4

// sectionHeaders are the literal lines that switch the segmenter into code
// mode for the indented block that follows.
var sectionHeaders = map[string]bool{
	"usage:":    true,
	"example:":  true,
	"examples:": true,
	"synopsis:": true,
}

// segmenter carries the per-line state machine: the in-progress segment and
// whether a section header has opened a code section.
type segmenter struct {
	segments []Segment
	current  *Segment
	inCode   bool
}

// Split classifies content into a sequence of text and code segments. Empty
// or whitespace-only input yields no segments.
func Split(content string) []Segment {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	s := &segmenter{}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case sectionHeaders[strings.ToLower(trimmed)]:
			// The header itself is prose; only what follows is code.
			s.flush()
			s.segments = append(s.segments, Segment{Kind: KindText, Content: trimmed})
			s.inCode = true

		case isInteractive(trimmed):
			s.appendCode(stripIndent(line))

		case trimmed == "":
			if s.current != nil && s.current.Kind == KindCode && codeContinuesAfterBlank(lines, i) {
				// Embedded blank line inside a multi-paragraph code block.
				s.current.Content += "\n"
				continue
			}
			s.flush()
			s.inCode = false

		case s.inCode && indentWidth(line) >= codeIndent:
			s.appendCode(stripIndent(line))

		case s.current != nil && s.current.Kind == KindCode:
			// A code block runs until a blank line, so unindented REPL
			// output stays attached to its prompt.
			s.appendCode(stripIndent(line))

		default:
			s.inCode = false
			s.appendText(trimmed)
		}
	}
	s.flush()
	return s.segments
}

// codeContinuesAfterBlank looks one line ahead of the blank at lines[i] to
// decide whether the open code segment continues past it.
func codeContinuesAfterBlank(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	next := lines[i+1]
	trimmed := strings.TrimSpace(next)
	if isInteractive(trimmed) {
		return true
	}
	return trimmed != "" && indentWidth(next) >= codeIndent
}

func isInteractive(trimmed string) bool {
	return strings.HasPrefix(trimmed, ">>>") || strings.HasPrefix(trimmed, "...")
}

func (s *segmenter) flush() {
	if s.current != nil {
		s.segments = append(s.segments, *s.current)
		s.current = nil
	}
}

func (s *segmenter) appendText(text string) {
	if s.current != nil && s.current.Kind == KindText {
		s.current.Content += " " + text
		return
	}
	s.flush()
	s.current = &Segment{Kind: KindText, Content: text}
}

func (s *segmenter) appendCode(line string) {
	if s.current != nil && s.current.Kind == KindCode {
		s.current.Content += "\n" + line
		return
	}
	s.flush()
	s.current = &Segment{Kind: KindCode, Content: line}
}

// indentWidth measures leading whitespace in columns, counting a tab as a
// full indent step.
func indentWidth(line string) int {
	w := 0
	for _, r := range line {
		switch r {
		case ' ':
			w++
		case '\t':
			w += codeIndent
		default:
			return w
		}
	}
	return w
}

// stripIndent removes the first indent step from a code line. Lines indented
// under 4 columns (a bare ">>>" at column 0, say) keep their whitespace, so
// deeper relative indentation inside a block survives.
func stripIndent(line string) string {
	if indentWidth(line) < codeIndent {
		return line
	}
	cols := 0
	for i, r := range line {
		if cols >= codeIndent {
			return line[i:]
		}
		switch r {
		case ' ':
			cols++
		case '\t':
			cols += codeIndent
		default:
			return line[i:]
		}
	}
	return ""
}
