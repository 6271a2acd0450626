package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// technicalKeywords and softKeywords classify skill category labels and
// individual skills. Technical takes precedence over soft, soft over other.
var technicalKeywords = []string{
	"programming", "language", "framework", "database", "tool", "software",
	"development", "engineering", "system", "web", "mobile", "cloud", "devops",
	"security", "network", "data", "analysis", "machine learning", "ai", "design",
}

var softKeywords = []string{
	"soft", "communication", "teamwork", "leadership", "problem-solving",
	"time management", "critical thinking", "decision-making", "organization",
	"creativity", "adaptability", "work ethic", "interpersonal", "collaboration",
	"emotional intelligence", "conflict resolution",
}

// categoryLineRe matches a short label followed by ":", "-", or "–" at line
// start, e.g. "Programming: Python, Go".
var categoryLineRe = regexp.MustCompile(`^([A-Za-z][A-Za-z &]*?)\s*[:\-–]\s*(.*)$`)

// skillBucket identifies one of the three SkillSet buckets.
type skillBucket int

const (
	bucketTechnical skillBucket = iota
	bucketSoft
	bucketOther
)

// ExtractSkills parses the skills section into a three-bucket SkillSet. When
// the section uses labeled categories, each category's label chooses the
// bucket for all of its skills; otherwise every tokenized skill is classified
// individually. Returns empty buckets for empty input.
func ExtractSkills(sectionText string) types.SkillSet {
	skills := types.SkillSet{
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		OtherSkills:     []string{},
	}
	if strings.TrimSpace(sectionText) == "" {
		return skills
	}

	if parseCategorizedSkills(sectionText, &skills) {
		return skills
	}

	for _, skill := range tokenizeSkills(sectionText) {
		appendSkill(&skills, classifySkill(skill), skill)
	}
	return skills
}

// parseCategorizedSkills handles sections with "Label: a, b, c" category
// lines. Lines between two category lines belong to the preceding category.
// Reports whether at least one category line was found.
func parseCategorizedSkills(sectionText string, skills *types.SkillSet) bool {
	found := false
	haveCurrent := false
	var current skillBucket

	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := categoryLineRe.FindStringSubmatch(line); m != nil && !isBulletLine(line) {
			found = true
			haveCurrent = true
			current = classifySkill(m[1])
			for _, skill := range tokenizeSkills(m[2]) {
				appendSkill(skills, current, skill)
			}
			continue
		}

		// Continuation of the current category.
		if haveCurrent {
			for _, skill := range tokenizeSkills(line) {
				appendSkill(skills, current, skill)
			}
		}
	}
	return found
}

// classifySkill picks the bucket for a skill or category label. Technical
// keywords are checked before soft ones.
func classifySkill(s string) skillBucket {
	lower := strings.ToLower(s)
	for _, keyword := range technicalKeywords {
		if strings.Contains(lower, keyword) {
			return bucketTechnical
		}
	}
	for _, keyword := range softKeywords {
		if strings.Contains(lower, keyword) {
			return bucketSoft
		}
	}
	return bucketOther
}

// appendSkill adds a skill to its bucket, keeping each bucket's entries
// distinct.
func appendSkill(skills *types.SkillSet, bucket skillBucket, skill string) {
	target := &skills.OtherSkills
	switch bucket {
	case bucketTechnical:
		target = &skills.TechnicalSkills
	case bucketSoft:
		target = &skills.SoftSkills
	}
	for _, existing := range *target {
		if strings.EqualFold(existing, skill) {
			return
		}
	}
	*target = append(*target, skill)
}

// tokenizeSkills splits skill text into individual skills. Delimiters are
// tried in order of preference: commas, bullet characters, pipes, newlines.
// Text with none of those falls back to a greedy grouping over
// whitespace-separated tokens.
func tokenizeSkills(text string) []string {
	for _, delim := range []string{",", "•", "|", "\n"} {
		if strings.Contains(text, delim) {
			var skills []string
			for _, part := range strings.Split(text, delim) {
				if part = strings.TrimSpace(part); part != "" {
					skills = append(skills, part)
				}
			}
			return skills
		}
	}
	return groupSkillTokens(text)
}

// groupSkillTokens merges whitespace-separated tokens into multi-word skills:
// connector words and all-uppercase tokens extend the current candidate,
// while a capitalized token starts a new one.
func groupSkillTokens(text string) []string {
	var skills []string
	var current string

	appendToken := func(token string) {
		if current == "" {
			current = token
		} else {
			current += " " + token
		}
	}

	for _, token := range strings.Fields(text) {
		switch {
		case isUpperToken(token) || isConnectorWord(token):
			appendToken(token)
		case startsUpper(token) && current != "":
			skills = append(skills, current)
			current = token
		default:
			appendToken(token)
		}
	}
	if current != "" {
		skills = append(skills, current)
	}
	return skills
}

func isConnectorWord(token string) bool {
	switch strings.ToLower(token) {
	case "and", "&", "of", "for":
		return true
	}
	return false
}

// isUpperToken reports whether a token contains letters and all of them are
// uppercase (acronyms like "AWS" or "SQL").
func isUpperToken(token string) bool {
	hasLetter := false
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func startsUpper(token string) bool {
	return token != "" && token[0] >= 'A' && token[0] <= 'Z'
}
