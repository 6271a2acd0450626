// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SectionName identifies one of the recognized résumé sections.
type SectionName string

// The closed set of section names a résumé can be segmented into.
// SectionOther collects header text and anything that precedes the first
// recognized section header.
const (
	SectionSummary        SectionName = "summary"
	SectionExperience     SectionName = "experience"
	SectionEducation      SectionName = "education"
	SectionSkills         SectionName = "skills"
	SectionCertifications SectionName = "certifications"
	SectionProjects       SectionName = "projects"
	SectionLanguages      SectionName = "languages"
	SectionInterests      SectionName = "interests"
	SectionResearch       SectionName = "research"
	SectionOther          SectionName = "other"
)

// SectionNames lists every section name in canonical order. Iteration over a
// SectionMap must go through this slice so output stays deterministic.
var SectionNames = []SectionName{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionProjects,
	SectionLanguages,
	SectionInterests,
	SectionResearch,
	SectionOther,
}

// SectionMap maps each section name to the verbatim substring of the
// normalized text that belongs to it. Sections are contiguous, non-overlapping
// spans ordered by first occurrence; missing sections are simply absent or
// empty.
type SectionMap map[SectionName]string

// Get returns the content for a section, or "" when the section is absent.
func (m SectionMap) Get(name SectionName) string {
	return m[name]
}

// OnlyOther reports whether segmentation recovered no structure at all, i.e.
// every non-empty span landed in the "other" bucket.
func (m SectionMap) OnlyOther() bool {
	for name, content := range m {
		if name != SectionOther && strings.TrimSpace(content) != "" {
			return false
		}
	}
	return true
}
