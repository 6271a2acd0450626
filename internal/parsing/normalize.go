package parsing

import (
	"regexp"
	"strings"
)

var (
	multiNewlineRe = regexp.MustCompile(`\n{2,}`)
	multiSpaceRe   = regexp.MustCompile(`[ \t]{2,}`)
)

// Normalize collapses résumé text into a canonical form: each line trimmed,
// runs of blank lines collapsed to a single newline, and runs of spaces/tabs
// collapsed to a single space. Normalize is total and idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Trim lines first so whitespace-only lines collapse away with the
	// newline pass.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = multiNewlineRe.ReplaceAllString(text, "\n")
	text = multiSpaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
