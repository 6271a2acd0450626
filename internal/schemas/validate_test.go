package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func validRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		ContactInfo: types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Summary:     "Backend engineer.",
		Experiences: []types.ExperienceEntry{
			{Title: "Engineer", Company: "ABC Inc", StartDate: "2018", EndDate: "2022", Bullets: []string{"Built things"}},
		},
		Education: []types.EducationEntry{
			{Degree: "BS CS", Institution: "XYZ University", StartDate: "2014", EndDate: "2018"},
		},
		Skills: types.SkillSet{TechnicalSkills: []string{"Go"}},
		Sections: types.SectionMap{
			types.SectionExperience: "Engineer, ABC Inc, 2018-2022",
		},
	}
}

func TestValidateResumeRecord_Valid(t *testing.T) {
	assert.NoError(t, ValidateResumeRecord(validRecord()))
}

func TestValidateResumeRecord_EmptyRecord(t *testing.T) {
	// A zero record is still schema-valid: every collection may be null.
	assert.NoError(t, ValidateResumeRecord(&types.ResumeRecord{}))
}

func TestValidateResumeRecordJSON_Valid(t *testing.T) {
	data, err := json.Marshal(validRecord())
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeRecordJSON(string(data)))
}

func TestValidateResumeRecordJSON_WrongType(t *testing.T) {
	err := ValidateResumeRecordJSON(`{"contact_info": "not an object", "summary": "", "experiences": null, "education": null, "skills": {"technical_skills": null, "soft_skills": null, "other_skills": null}, "certifications": null, "research": null, "raw_sections": null}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateResumeRecordJSON_UnknownField(t *testing.T) {
	data, err := json.Marshal(validRecord())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["unexpected"] = true
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.Error(t, ValidateResumeRecordJSON(string(raw)))
}

func TestValidateResumeRecordJSON_Malformed(t *testing.T) {
	err := ValidateResumeRecordJSON(`{not json`)

	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
