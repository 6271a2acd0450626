package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	dateRangeSplitRe = regexp.MustCompile(`[-–—]`)
	yearRangeRe      = regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4}|Present|Current)`)
	// loosePairRe spots "Company, Position" style boundaries when the
	// comma-title pass found nothing.
	loosePairRe = regexp.MustCompile(`[A-Z][a-zA-Z]+.*[,:].*[A-Z][a-zA-Z]+`)
	// capsLineRe matches a line consisting entirely of capitalized words,
	// treated as the start of a new entry in the loose pass.
	capsLineRe = regexp.MustCompile(`^[A-Z][a-zA-Z\s&]+$`)
)

// ExtractExperience parses the experience section into structured entries,
// ordered as they appear. A line containing a comma (and not starting with a
// bullet marker) opens a new entry: comma-separated parts map to title,
// company, and an optional date range split on a dash. Bullet lines
// accumulate into the current entry's bullets; anything else extends its
// free-text description. When this pass yields no entries, a looser
// capitalized-boundary pass is tried. ExtractExperience never fails; worst
// case it returns an empty list.
func ExtractExperience(sectionText string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	if strings.TrimSpace(sectionText) == "" {
		return entries
	}

	var current *types.ExperienceEntry
	flush := func() {
		if current != nil {
			current.Description = strings.TrimSpace(current.Description)
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, ",") && !isBulletLine(line):
			flush()
			current = newEntryFromTitleLine(line)
		case isBulletLine(line):
			if current != nil {
				current.Bullets = append(current.Bullets, stripBullet(line))
			}
		default:
			if current != nil {
				current.Description += line + " "
			}
		}
	}
	flush()

	if len(entries) == 0 {
		return extractExperienceLoose(sectionText)
	}
	return entries
}

// newEntryFromTitleLine splits "Title, Company, Dates" into an entry. A date
// part without a dash becomes the start date alone.
func newEntryFromTitleLine(line string) *types.ExperienceEntry {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	entry := &types.ExperienceEntry{Title: parts[0], Bullets: []string{}}
	if len(parts) > 1 {
		entry.Company = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		dates := dateRangeSplitRe.Split(parts[2], 2)
		entry.StartDate = strings.TrimSpace(dates[0])
		if len(dates) > 1 {
			entry.EndDate = strings.TrimSpace(dates[1])
		}
	}
	return entry
}

// extractExperienceLoose handles résumés that don't use the comma-separated
// title format. A line pairing two capitalized words across a comma or colon
// opens an entry (company first, then position); a line of all capitalized
// words while an entry with a company is active starts the next entry.
func extractExperienceLoose(sectionText string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	var current *types.ExperienceEntry

	flush := func() {
		if current != nil && current.Company != "" {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case current == nil && loosePairRe.MatchString(line):
			current = &types.ExperienceEntry{Bullets: []string{}}
			company, title := splitCompanyPosition(line)
			current.Company = company
			current.Title = title
		case current != nil && yearRangeRe.MatchString(line):
			m := yearRangeRe.FindStringSubmatch(line)
			current.StartDate = m[1]
			current.EndDate = m[2]
		case current != nil && isBulletLine(line):
			current.Bullets = append(current.Bullets, stripBullet(line))
		case current != nil && current.Company != "" && capsLineRe.MatchString(line):
			flush()
			current = &types.ExperienceEntry{Company: line, Bullets: []string{}}
		}
	}
	flush()

	return entries
}

// splitCompanyPosition splits a loose boundary line on its first comma, or
// first colon when no comma exists. An unsplittable line is all company.
func splitCompanyPosition(line string) (company, position string) {
	sep := ","
	if !strings.Contains(line, ",") {
		sep = ":"
	}
	parts := strings.SplitN(line, sep, 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(line), ""
}
