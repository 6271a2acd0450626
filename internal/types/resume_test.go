package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatText_AllParts(t *testing.T) {
	entry := ExperienceEntry{
		Title:       "Software Engineer",
		Company:     "ABC Inc",
		Description: "Worked on backend systems",
		Bullets:     []string{"Developed X", "Implemented Y"},
	}

	text := entry.FlatText()

	assert.Equal(t, "Software Engineer ABC Inc Worked on backend systems Developed X Implemented Y", text)
}

func TestFlatText_EmptyFieldsSkipped(t *testing.T) {
	entry := ExperienceEntry{Title: "Engineer"}

	assert.Equal(t, "Engineer", entry.FlatText())
}

func TestSkillSetAll_PreservesBucketOrder(t *testing.T) {
	skills := SkillSet{
		TechnicalSkills: []string{"Python", "Go"},
		SoftSkills:      []string{"Leadership"},
		OtherSkills:     []string{"French"},
	}

	assert.Equal(t, []string{"Python", "Go", "Leadership", "French"}, skills.All())
}

func TestSectionMapOnlyOther(t *testing.T) {
	tests := []struct {
		name     string
		sections SectionMap
		expected bool
	}{
		{
			name:     "empty map",
			sections: SectionMap{},
			expected: true,
		},
		{
			name:     "only other populated",
			sections: SectionMap{SectionOther: "John Doe\njohn@example.com"},
			expected: true,
		},
		{
			name:     "other plus whitespace section",
			sections: SectionMap{SectionOther: "text", SectionSkills: "  \n "},
			expected: true,
		},
		{
			name:     "experience populated",
			sections: SectionMap{SectionOther: "text", SectionExperience: "Engineer, ABC, 2020"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sections.OnlyOther())
		})
	}
}

func TestResumeRecord_JSONRoundTrip(t *testing.T) {
	record := ResumeRecord{
		ContactInfo: ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Summary:     "Experienced engineer.",
		Experiences: []ExperienceEntry{
			{Title: "Engineer", Company: "ABC Inc", StartDate: "2018", EndDate: "2022", Bullets: []string{"Built things"}},
		},
		Skills:   SkillSet{TechnicalSkills: []string{"Go"}},
		Sections: SectionMap{SectionExperience: "Engineer, ABC Inc, 2018-2022"},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded ResumeRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record, decoded)
}

func TestRankedExperienceEntry_EmbedsEntry(t *testing.T) {
	ranked := RankedExperienceEntry{
		ExperienceEntry: ExperienceEntry{Title: "Engineer", Company: "ABC"},
		RelevanceScore:  0.42,
	}

	data, err := json.Marshal(ranked)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"relevance_score":0.42`)
	assert.Contains(t, string(data), `"title":"Engineer"`)
}
