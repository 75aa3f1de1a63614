package docstring

import "strings"

// Normalize strips a duplicated summary prefix from a description. The
// generator sometimes repeats the summary as the description's opening
// sentence; rendering both verbatim would show the same text twice. When the
// description does not start with the summary it is returned unchanged.
func Normalize(summary, description string) string {
	if summary == "" || !strings.HasPrefix(description, summary) {
		return description
	}
	return strings.TrimSpace(strings.TrimPrefix(description, summary))
}
