package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`)
)

// nonNameTokens mark lines that cannot be a person's name.
var nonNameTokens = []string{"resume", "cv", "@", ".com", "http"}

// ExtractContact pulls contact details out of résumé header text. Every field
// is optional and extracted independently; the first match wins. Name
// extraction is best-effort: the recognizer (when non-nil) is asked for a
// PERSON entity in the first few lines, with a short-line heuristic as
// fallback. ExtractContact never fails.
func ExtractContact(headerText string, ner NameRecognizer) types.ContactInfo {
	info := types.ContactInfo{
		Email:    emailRe.FindString(headerText),
		Phone:    phoneRe.FindString(headerText),
		LinkedIn: linkedinRe.FindString(headerText),
		GitHub:   githubRe.FindString(headerText),
	}
	info.Name = extractName(headerText, ner)
	return info
}

// extractName inspects the first few lines for a plausible name line.
func extractName(text string, ner NameRecognizer) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || containsNonNameToken(line) {
			continue
		}

		if ner != nil {
			if name := ner.PersonName(line); name != "" {
				return name
			}
		}
		if len(strings.Fields(line)) < 5 {
			return line
		}
	}
	return ""
}

func containsNonNameToken(line string) bool {
	lower := strings.ToLower(line)
	for _, token := range nonNameTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
