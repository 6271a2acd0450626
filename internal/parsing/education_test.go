package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation_DegreeAndInstitution(t *testing.T) {
	entries := ExtractEducation("BS CS, XYZ University, 2014-2018")

	require.Len(t, entries, 1)
	assert.Equal(t, "BS CS", entries[0].Degree)
	assert.Equal(t, "XYZ University", entries[0].Institution)
	assert.Equal(t, "2014", entries[0].StartDate)
	assert.Equal(t, "2018", entries[0].EndDate)
}

func TestExtractEducation_PresentEndDate(t *testing.T) {
	entries := ExtractEducation("PhD in Physics, MIT, 2020 - Present")

	require.Len(t, entries, 1)
	assert.Equal(t, "Present", entries[0].EndDate)
}

func TestExtractEducation_SingleYearNoRange(t *testing.T) {
	entries := ExtractEducation("MBA, Harvard Business School, 2019")

	require.Len(t, entries, 1)
	assert.Equal(t, "2019", entries[0].StartDate)
	assert.Empty(t, entries[0].EndDate)
}

func TestExtractEducation_SinglePartClassifiedByKeyword(t *testing.T) {
	tests := []struct {
		name            string
		line            string
		wantDegree      string
		wantInstitution string
	}{
		{"degree keyword", "Bachelor of Science 2014-2018", "Bachelor of Science", ""},
		{"institution", "Stanford University 2014-2018", "", "Stanford University"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := ExtractEducation(tt.line)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantDegree, entries[0].Degree)
			assert.Equal(t, tt.wantInstitution, entries[0].Institution)
		})
	}
}

func TestExtractEducation_DetailLinesAndInstitutionBackfill(t *testing.T) {
	text := "Master of Science 2018-2020\nXYZ University\n- GPA 3.9\n- Thesis on distributed systems"

	entries := ExtractEducation(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "XYZ University", entries[0].Institution)
	assert.Equal(t, []string{"GPA 3.9", "Thesis on distributed systems"}, entries[0].Details)
}

func TestExtractEducation_MultipleEntries(t *testing.T) {
	text := "MS CS, ABC University, 2018-2020\nBS CS, XYZ University, 2014-2018"

	entries := ExtractEducation(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "ABC University", entries[0].Institution)
	assert.Equal(t, "XYZ University", entries[1].Institution)
}

func TestExtractEducation_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractEducation(""))
}

func TestExtractEducation_EntryWithoutDegreeOrInstitutionDiscarded(t *testing.T) {
	entries := ExtractEducation("2014-2018")

	assert.Empty(t, entries)
}
