// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of a parsed résumé.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.ContactInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", record.ContactInfo.Email))
	if record.ContactInfo.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", record.ContactInfo.Phone))
	}
	sb.WriteString("\n")

	if len(record.Experiences) > 0 {
		sb.WriteString(fmt.Sprintf("Experiences (%d):\n", len(record.Experiences)))
		count := min(len(record.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := record.Experiences[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(record.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(record.Education)))
		count := min(len(record.Education), 3)
		for i := 0; i < count; i++ {
			edu := record.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", edu.Degree))
			if edu.Institution != "" {
				sb.WriteString(fmt.Sprintf(", %s", edu.Institution))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	skills := record.Skills.All()
	if len(skills) > 0 {
		joined := strings.Join(skills, ", ")
		if len(joined) > 45 {
			joined = joined[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", joined))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedExperiences outputs the top ranked experiences with scores.
func (p *Printer) PrintRankedExperiences(ranked []types.RankedExperienceEntry) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total experiences ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := ranked[i]
		title := entry.Title
		if entry.Company != "" {
			title += " @ " + entry.Company
		}
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", entry.RelevanceScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more experiences", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED EXPERIENCES", sb.String())
}

// PrintSkillGaps outputs skills the job asks for that the résumé lacks.
func (p *Printer) PrintSkillGaps(gaps []string) {
	if len(gaps) == 0 {
		p.printBox("SKILL GAPS", "No skill gaps found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d potential gaps:\n\n", len(gaps)))
	for _, gap := range gaps {
		sb.WriteString(fmt.Sprintf("  • %s\n", gap))
	}

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}
