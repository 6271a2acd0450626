package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// sectionSynonyms maps each section name to the header phrases that announce
// it. Matching is case-insensitive, whole-word, and tolerates a trailing "s"
// and a trailing colon.
var sectionSynonyms = map[types.SectionName][]string{
	types.SectionSummary: {
		"summary", "professional summary", "profile", "professional profile",
		"about me", "career objective", "objective",
	},
	types.SectionExperience: {
		"experience", "work experience", "employment history", "work history",
		"professional experience", "career", "relevant experience",
	},
	types.SectionEducation: {
		"education", "academic background", "academic history",
		"educational background", "qualifications", "academic qualifications",
	},
	types.SectionSkills: {
		"skills", "technical skills", "core skills", "competencies",
		"key skills", "expertise", "proficiencies", "abilities",
	},
	types.SectionCertifications: {
		"certifications", "certificates", "professional certifications",
		"accreditations", "licenses",
	},
	types.SectionProjects: {
		"projects", "personal projects", "professional projects",
		"key projects", "portfolio",
	},
	types.SectionLanguages: {
		"languages", "language proficiency", "language skills",
	},
	types.SectionInterests: {
		"interests", "hobbies", "activities", "personal interests",
	},
	types.SectionResearch: {
		"research", "research experience", "academic research", "publications",
	},
}

// headerSections is the fixed order sections are tried in when classifying a
// header line, so classification never depends on map iteration order.
var headerSections = []types.SectionName{
	types.SectionSummary,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionCertifications,
	types.SectionProjects,
	types.SectionLanguages,
	types.SectionInterests,
	types.SectionResearch,
}

var (
	sectionPatterns = buildSectionPatterns()
	exactSynonyms   = buildExactSynonyms()
)

// synonymStem reduces a synonym to its singular stem so that both singular
// and pluralized header forms match.
func synonymStem(syn string) string {
	return strings.TrimSuffix(syn, "s")
}

func buildSectionPatterns() map[types.SectionName]*regexp.Regexp {
	patterns := make(map[types.SectionName]*regexp.Regexp, len(sectionSynonyms))
	for section, synonyms := range sectionSynonyms {
		quoted := make([]string, len(synonyms))
		for i, syn := range synonyms {
			quoted[i] = regexp.QuoteMeta(synonymStem(syn)) + `s?`
		}
		patterns[section] = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return patterns
}

func buildExactSynonyms() map[string]types.SectionName {
	exact := make(map[string]types.SectionName)
	for _, section := range headerSections {
		for _, syn := range sectionSynonyms[section] {
			stem := synonymStem(syn)
			exact[stem] = section
			exact[stem+"s"] = section
		}
	}
	return exact
}

// maxHeaderWords bounds how long a line can be and still count as a header.
// Content lines that merely mention a section word ("gained experience in X")
// stay content.
const maxHeaderWords = 5

// Segment splits normalized résumé text into named sections by scanning for
// header lines. Only the first occurrence of each section establishes its
// span; a section's content runs from the line after its header to the line
// before the next header. Text before the first header — or all text when no
// header is recognized — is assigned to the "other" bucket. Segment never
// fails; absence of structure degrades to everything being "other".
func Segment(normalizedText string) types.SectionMap {
	sections := types.SectionMap{}
	if strings.TrimSpace(normalizedText) == "" {
		return sections
	}

	lines := strings.Split(normalizedText, "\n")

	type headerMark struct {
		line    int
		section types.SectionName
	}
	var marks []headerMark
	seen := make(map[types.SectionName]bool)

	for i, line := range lines {
		section, ok := classifyHeaderLine(line)
		if !ok || seen[section] {
			continue
		}
		seen[section] = true
		marks = append(marks, headerMark{line: i, section: section})
	}

	if len(marks) == 0 {
		sections[types.SectionOther] = strings.TrimSpace(normalizedText)
		return sections
	}

	for i, mark := range marks {
		start := mark.line + 1
		end := len(lines)
		if i+1 < len(marks) {
			end = marks[i+1].line
		}
		sections[mark.section] = strings.TrimSpace(strings.Join(lines[start:end], "\n"))
	}

	if marks[0].line > 0 {
		sections[types.SectionOther] = strings.TrimSpace(strings.Join(lines[:marks[0].line], "\n"))
	}

	return sections
}

// classifyHeaderLine decides whether a line announces a section and which
// one. All-caps lines that exactly equal a synonym are matched first; other
// lines fall back to whole-word matching, but only when they are short enough
// to plausibly be a header and are not bullet text.
func classifyHeaderLine(line string) (types.SectionName, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isBulletLine(trimmed) {
		return "", false
	}

	// Preferred match: an all-caps line equal to a known synonym.
	if isUpperLine(trimmed) && len(trimmed) >= 3 {
		key := strings.ToLower(strings.TrimSuffix(trimmed, ":"))
		if section, ok := exactSynonyms[key]; ok {
			return section, true
		}
	}

	if len(strings.Fields(trimmed)) > maxHeaderWords {
		return "", false
	}
	for _, section := range headerSections {
		if sectionPatterns[section].MatchString(trimmed) {
			return section, true
		}
	}
	return "", false
}

func isUpperLine(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}
