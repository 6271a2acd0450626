// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ContactInfo holds contact details extracted from the résumé header. Every
// field is optional; an empty string means the field was not found. At most
// one value is kept per field (first match wins).
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ExperienceEntry represents a single job within the experience section.
// Dates are free text as they appeared in the source (a year, a month-year,
// or the literal "Present"/"Current") and are never normalized to a date
// type.
type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// FlatText concatenates the entry's title, company, description, and bullets
// into a single string for text analysis.
func (e ExperienceEntry) FlatText() string {
	parts := make([]string, 0, 4+len(e.Bullets))
	for _, p := range []string{e.Title, e.Company, e.Description} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, e.Bullets...)
	return strings.Join(parts, " ")
}

// EducationEntry represents one degree or program within the education
// section.
type EducationEntry struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Details     []string `json:"details"`
}

// SkillSet partitions extracted skills into three disjoint buckets. A skill
// belongs to exactly one bucket; classification checks technical keywords
// first, then soft, then defaults to other.
type SkillSet struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	OtherSkills     []string `json:"other_skills"`
}

// All returns every skill across the three buckets in bucket order.
func (s SkillSet) All() []string {
	all := make([]string, 0, len(s.TechnicalSkills)+len(s.SoftSkills)+len(s.OtherSkills))
	all = append(all, s.TechnicalSkills...)
	all = append(all, s.SoftSkills...)
	all = append(all, s.OtherSkills...)
	return all
}

// CertificationEntry represents one certification line. Issuer and Date may
// be empty when the line carried no recognizable issuer or date token.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// ResearchEntry represents one research project or academic research
// experience.
type ResearchEntry struct {
	Title       string   `json:"title"`
	Institution string   `json:"institution,omitempty"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description []string `json:"description"`
}

// ResumeRecord is the aggregate result of one parse call. It is created once
// per call and never mutated afterward; re-parsing produces a new record. The
// originating SectionMap is kept for diagnostics.
type ResumeRecord struct {
	ContactInfo    ContactInfo          `json:"contact_info"`
	Summary        string               `json:"summary"`
	Experiences    []ExperienceEntry    `json:"experiences"`
	Education      []EducationEntry     `json:"education"`
	Skills         SkillSet             `json:"skills"`
	Certifications []CertificationEntry `json:"certifications"`
	Research       []ResearchEntry      `json:"research"`
	Sections       SectionMap           `json:"raw_sections"`
}

// RankedExperienceEntry decorates a copy of an ExperienceEntry with its
// relevance score against a job description. Scores are always in [0, 1].
type RankedExperienceEntry struct {
	ExperienceEntry
	RelevanceScore float64 `json:"relevance_score"`
}
