package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	// certDateRe finds a month-name + year token or a bare 4-digit year.
	certDateRe = regexp.MustCompile(monthNamePattern + `[\s.,-]+\d{4}|\d{4}`)
	// trailingSepRe trims separator punctuation left behind once the date is
	// removed.
	trailingSepRe = regexp.MustCompile(`[,\-–—]\s*$`)
	// spacedDashRe splits "Name - Issuer" style lines.
	spacedDashRe = regexp.MustCompile(`\s+[-–—]\s+`)
	certSplitRe  = regexp.MustCompile(`\n|•`)
)

// ExtractCertifications parses the certifications section, one entry per
// line or bullet. A date-like token becomes the entry's date and is stripped
// from the name; a comma (or a dash surrounded by spaces) splits name from
// issuer. Issuer and date may be empty.
func ExtractCertifications(sectionText string) []types.CertificationEntry {
	certifications := []types.CertificationEntry{}
	if strings.TrimSpace(sectionText) == "" {
		return certifications
	}

	for _, line := range certSplitRe.Split(sectionText, -1) {
		line = stripBullet(line)
		if line == "" {
			continue
		}

		var entry types.CertificationEntry
		name := line

		if date := certDateRe.FindString(line); date != "" {
			entry.Date = strings.TrimSpace(date)
			name = strings.TrimSpace(strings.Replace(line, date, "", 1))
			name = strings.TrimSpace(trailingSepRe.ReplaceAllString(name, ""))
		}

		if idx := strings.Index(name, ","); idx >= 0 {
			entry.Name = strings.TrimSpace(name[:idx])
			entry.Issuer = strings.TrimSpace(name[idx+1:])
		} else if loc := spacedDashRe.FindStringIndex(name); loc != nil {
			entry.Name = strings.TrimSpace(name[:loc[0]])
			entry.Issuer = strings.TrimSpace(name[loc[1]:])
		} else {
			entry.Name = name
		}

		certifications = append(certifications, entry)
	}
	return certifications
}
