// Package parsing recovers structured résumé data from unstructured text:
// normalization, heuristic section segmentation, per-section entity
// extraction, and the orchestrating parse pipeline. Every extractor is a
// total function that degrades to empty results rather than failing;
// malformed résumés yield a best-effort record, never an error.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// contactFallbackChars is how much of the normalized text is handed to the
// contact extractor when no header section was segmented.
const contactFallbackChars = 500

// Parser runs the document-to-structured-record pipeline. The zero-config
// parser from NewParser uses the shared prose-backed name recognizer; tests
// and callers that need full determinism can inject their own or disable NER
// entirely.
type Parser struct {
	ner NameRecognizer
}

// Option configures a Parser.
type Option func(*Parser)

// WithNameRecognizer overrides the name recognizer used for contact
// extraction. Passing nil disables NER, leaving only the short-line
// heuristic.
func WithNameRecognizer(ner NameRecognizer) Option {
	return func(p *Parser) {
		p.ner = ner
	}
}

// NewParser returns a Parser ready for concurrent use. Each Parse call is
// independent; the parser holds no per-call state.
func NewParser(opts ...Option) *Parser {
	p := &Parser{ner: DefaultNameRecognizer()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse turns raw résumé text into a ResumeRecord. The input is normalized,
// segmented into sections, and each section handed to its extractor. Parse
// returns ErrEmptyInput for empty/whitespace-only text. When segmentation
// finds no structure the record is still built from the "other" bucket and
// returned together with ErrNoStructure.
func (p *Parser) Parse(text string) (*types.ResumeRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	normalized := Normalize(text)
	sections := Segment(normalized)

	contactSource := sections.Get(types.SectionOther)
	if strings.TrimSpace(contactSource) == "" {
		contactSource = headText(normalized, contactFallbackChars)
	}

	research := ExtractResearch(sections.Get(types.SectionResearch))
	if len(research) == 0 {
		// Research work often lives under a "Projects" header instead.
		research = ExtractResearch(sections.Get(types.SectionProjects))
	}

	record := &types.ResumeRecord{
		ContactInfo:    ExtractContact(contactSource, p.ner),
		Summary:        sections.Get(types.SectionSummary),
		Experiences:    ExtractExperience(sections.Get(types.SectionExperience)),
		Education:      ExtractEducation(sections.Get(types.SectionEducation)),
		Skills:         ExtractSkills(sections.Get(types.SectionSkills)),
		Certifications: ExtractCertifications(sections.Get(types.SectionCertifications)),
		Research:       research,
		Sections:       sections,
	}

	if sections.OnlyOther() {
		return record, ErrNoStructure
	}
	return record, nil
}

// headText returns the first n runes of s without splitting a rune.
func headText(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
