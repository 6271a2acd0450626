package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// eduYearRe anchors education entries on a year or year-range token.
var eduYearRe = regexp.MustCompile(`\b((?:19|20)\d{2})(?:\s*[-–—]\s*((?:19|20)\d{2}|Present|Current))?\b`)

// eduSplitRe breaks the remainder of a year line into degree/institution
// parts.
var eduSplitRe = regexp.MustCompile(`[,\-–—]`)

// degreeKeywords classify a lone part as a degree rather than an institution.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctor", "bs", "ba", "ms", "ma", "mba", "diploma",
}

// ExtractEducation parses the education section into entries. A line carrying
// a year token starts a new entry; the line with the token removed is split
// on commas/dashes into degree and institution. Subsequent lines fill the
// institution when it is still empty, otherwise they accumulate as details.
// Entries that end up with neither degree nor institution are discarded.
func ExtractEducation(sectionText string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if strings.TrimSpace(sectionText) == "" {
		return entries
	}

	var current *types.EducationEntry
	flush := func() {
		if current != nil && (current.Degree != "" || current.Institution != "") {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := eduYearRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &types.EducationEntry{
				StartDate: m[1],
				EndDate:   m[2],
				Details:   []string{},
			}
			assignDegreeInstitution(current, strings.Replace(line, m[0], "", 1))
			continue
		}

		if current != nil {
			switch {
			case isBulletLine(line):
				current.Details = append(current.Details, stripBullet(line))
			case current.Institution == "":
				current.Institution = line
			default:
				current.Details = append(current.Details, line)
			}
			continue
		}

		// No year token and no active entry: open one keyed on whether the
		// line reads like a degree or an institution.
		current = &types.EducationEntry{Details: []string{}}
		if containsDegreeKeyword(line) {
			current.Degree = line
		} else {
			current.Institution = line
		}
	}
	flush()

	return entries
}

// assignDegreeInstitution distributes the non-date portion of a year line.
// Two or more parts map positionally; a single part is classified by degree
// keywords.
func assignDegreeInstitution(entry *types.EducationEntry, rest string) {
	var parts []string
	for _, p := range eduSplitRe.Split(rest, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	switch {
	case len(parts) >= 2:
		entry.Degree = parts[0]
		entry.Institution = parts[1]
	case len(parts) == 1:
		if containsDegreeKeyword(parts[0]) {
			entry.Degree = parts[0]
		} else {
			entry.Institution = parts[0]
		}
	}
}

func containsDegreeKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
