package ranking

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const backendJob = "We are hiring a backend engineer to build Go microservices " +
	"on Kubernetes. Experience with Docker, PostgreSQL and distributed " +
	"systems required. You will design APIs and mentor other engineers."

var (
	backendExp = types.ExperienceEntry{
		Title:   "Backend Engineer",
		Company: "ABC Inc",
		Bullets: []string{
			"Built Go microservices deployed on Kubernetes",
			"Designed APIs backed by PostgreSQL",
			"Worked with Docker and distributed systems daily",
		},
	}
	pastryExp = types.ExperienceEntry{
		Title:   "Pastry Chef",
		Company: "Sweet Things",
		Bullets: []string{"Baked croissants", "Managed the morning oven shift"},
	}
)

func TestScoreRelevance_BoundedZeroToOne(t *testing.T) {
	for _, exp := range []types.ExperienceEntry{backendExp, pastryExp, {}} {
		score := ScoreRelevance(exp, backendJob)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScoreRelevance_EmptyJobDescription(t *testing.T) {
	assert.Zero(t, ScoreRelevance(backendExp, ""))
	assert.Zero(t, ScoreRelevance(backendExp, "   \n "))
}

func TestScoreRelevance_RelevantBeatsIrrelevant(t *testing.T) {
	relevant := ScoreRelevance(backendExp, backendJob)
	irrelevant := ScoreRelevance(pastryExp, backendJob)

	assert.Greater(t, relevant, irrelevant)
}

func TestScoreRelevance_Deterministic(t *testing.T) {
	first := ScoreRelevance(backendExp, backendJob)
	second := ScoreRelevance(backendExp, backendJob)

	assert.Equal(t, first, second)
}

func TestRankExperiences_SortedDescending(t *testing.T) {
	ranked := RankExperiences([]types.ExperienceEntry{pastryExp, backendExp}, backendJob)

	require.Len(t, ranked, 2)
	assert.Equal(t, "ABC Inc", ranked[0].Company)
	assert.GreaterOrEqual(t, ranked[0].RelevanceScore, ranked[1].RelevanceScore)
}

func TestRankExperiences_TiesKeepResumeOrder(t *testing.T) {
	first := backendExp
	first.Company = "First Corp"
	second := backendExp
	second.Company = "Second Corp"

	ranked := RankExperiences([]types.ExperienceEntry{first, second}, backendJob)

	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].RelevanceScore, ranked[1].RelevanceScore)
	assert.Equal(t, "First Corp", ranked[0].Company)
	assert.Equal(t, "Second Corp", ranked[1].Company)
}

func TestRankExperiences_InputUnchanged(t *testing.T) {
	input := []types.ExperienceEntry{pastryExp, backendExp}

	RankExperiences(input, backendJob)

	assert.Equal(t, "Sweet Things", input[0].Company)
	assert.Equal(t, "ABC Inc", input[1].Company)
}

func TestRankExperiences_EmptyInput(t *testing.T) {
	assert.Empty(t, RankExperiences(nil, backendJob))
}

func TestSelectRelevantExperiences_CapsAtMaxItems(t *testing.T) {
	many := []types.ExperienceEntry{backendExp, backendExp, backendExp, backendExp, backendExp}

	selected := SelectRelevantExperiences(many, backendJob, 2)

	assert.LessOrEqual(t, len(selected), 2)
}

func TestSelectRelevantExperiences_DefaultLimit(t *testing.T) {
	many := []types.ExperienceEntry{backendExp, backendExp, backendExp, backendExp, backendExp}

	selected := SelectRelevantExperiences(many, backendJob, 0)

	assert.LessOrEqual(t, len(selected), DefaultMaxSelected)
}

func TestSelectRelevantExperiences_DropsWeakEntries(t *testing.T) {
	selected := SelectRelevantExperiences([]types.ExperienceEntry{backendExp, pastryExp}, backendJob, 3)

	for _, entry := range selected {
		assert.GreaterOrEqual(t, entry.RelevanceScore, minRelevanceScore)
		assert.NotEqual(t, "Sweet Things", entry.Company)
	}
}

func TestSelectRelevantExperiences_TruncatesBeforeFiltering(t *testing.T) {
	// A strong fourth entry must not replace a weak entry inside the
	// cutoff window.
	entries := []types.ExperienceEntry{pastryExp, pastryExp, pastryExp, backendExp}

	selected := SelectRelevantExperiences(entries, backendJob, 3)

	// Ranking puts the backend entry first, so it survives; the point is
	// that no more than maxItems entries are ever considered.
	assert.LessOrEqual(t, len(selected), 3)
	for _, entry := range selected {
		assert.GreaterOrEqual(t, entry.RelevanceScore, minRelevanceScore)
	}
}
