package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// researchDatePart matches one side of a research date range: month-name +
// year, slash date, or bare year.
const researchDatePart = monthNamePattern + `\s+\d{4}|\d{1,2}/\d{4}|\d{4}`

var (
	blockSplitRe    = regexp.MustCompile(`\n\s*\n`)
	researchDateRe  = regexp.MustCompile(`(` + researchDatePart + `)\s*[-–—]\s*(` + researchDatePart + `|Present|Current)`)
	researchTitleRe = regexp.MustCompile(`^(.+?)(?:,|\n|$)`)
)

// ExtractResearch parses the research section into blank-line-separated
// entries. Per block, the first fragment up to a comma or newline is the
// title and a date range anywhere in the block supplies the dates. Remaining
// lines fill the institution until the first bullet flips the entry into
// description capture, after which every line accumulates as description.
func ExtractResearch(sectionText string) []types.ResearchEntry {
	research := []types.ResearchEntry{}
	if strings.TrimSpace(sectionText) == "" {
		return research
	}

	for _, block := range blockSplitRe.Split(sectionText, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		entry := types.ResearchEntry{Description: []string{}}

		if m := researchTitleRe.FindStringSubmatch(block); m != nil {
			entry.Title = strings.TrimSpace(m[1])
		}

		dateToken := ""
		if m := researchDateRe.FindStringSubmatch(block); m != nil {
			entry.StartDate = strings.TrimSpace(m[1])
			entry.EndDate = strings.TrimSpace(m[2])
			dateToken = m[0]
		}

		captureMode := false
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			// Skip the title line and the date line themselves.
			if entry.Title != "" && strings.Contains(line, entry.Title) {
				continue
			}
			if dateToken != "" && strings.Contains(line, dateToken) {
				continue
			}

			if isBulletLine(line) || captureMode {
				if detail := stripBullet(line); detail != "" {
					entry.Description = append(entry.Description, detail)
				}
				captureMode = true
			} else if len(entry.Description) == 0 {
				if entry.Institution == "" {
					entry.Institution = line
				} else {
					entry.Description = append(entry.Description, line)
				}
			}
		}

		research = append(research, entry)
	}
	return research
}
