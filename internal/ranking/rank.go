// Package ranking scores résumé experience entries against job descriptions
// with a TF-IDF keyword matcher, ranks and selects the most relevant
// entries, and surfaces skills the job asks for that the résumé lacks.
package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// numKeyTerms is how many top TF-IDF terms of the job description form
	// the key-term set an experience is matched against.
	numKeyTerms = 50

	// minRelevanceScore is the floor below which a selected experience is
	// dropped.
	minRelevanceScore = 0.2

	// DefaultMaxSelected caps SelectRelevantExperiences when the caller
	// passes a non-positive limit.
	DefaultMaxSelected = 3
)

// ScoreRelevance scores one experience entry against a job description. The
// job's top TF-IDF terms over the two-document corpus {experience, job}
// become the key-term set; coverage is the fraction of key terms hit by the
// experience's token stream, counting repeats. The coverage is doubled and
// clamped so partial overlap still yields a usable score. Result is always
// in [0, 1]; an empty job description scores 0.
func ScoreRelevance(exp types.ExperienceEntry, jobDescription string) float64 {
	jobTokens := Preprocess(jobDescription)
	expTokens := Preprocess(exp.FlatText())

	scores := tfidf(jobTokens, [][]string{expTokens, jobTokens})
	keyTerms := topTerms(scores, numKeyTerms)
	if len(keyTerms) == 0 {
		return 0.0
	}

	keySet := make(map[string]struct{}, len(keyTerms))
	for _, term := range keyTerms {
		keySet[term] = struct{}{}
	}

	matches := 0
	for _, token := range expTokens {
		if _, ok := keySet[token]; ok {
			matches++
		}
	}

	coverage := float64(matches) / float64(len(keyTerms))
	return math.Min(1.0, coverage*2)
}

// RankExperiences scores every entry and returns them sorted by descending
// relevance. The sort is stable, so equally scored entries keep their
// résumé order. The input slice is not modified.
func RankExperiences(experiences []types.ExperienceEntry, jobDescription string) []types.RankedExperienceEntry {
	ranked := make([]types.RankedExperienceEntry, 0, len(experiences))
	for _, exp := range experiences {
		ranked = append(ranked, types.RankedExperienceEntry{
			ExperienceEntry: exp,
			RelevanceScore:  ScoreRelevance(exp, jobDescription),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})
	return ranked
}

// SelectRelevantExperiences returns the best experiences for a job: the
// ranking is cut to maxItems first and the minimum-score filter applied
// after, so a weak third entry is dropped rather than replaced by a weaker
// fourth. A non-positive maxItems means DefaultMaxSelected.
func SelectRelevantExperiences(experiences []types.ExperienceEntry, jobDescription string, maxItems int) []types.RankedExperienceEntry {
	if maxItems <= 0 {
		maxItems = DefaultMaxSelected
	}

	ranked := RankExperiences(experiences, jobDescription)
	if len(ranked) > maxItems {
		ranked = ranked[:maxItems]
	}

	selected := make([]types.RankedExperienceEntry, 0, len(ranked))
	for _, entry := range ranked {
		if entry.RelevanceScore >= minRelevanceScore {
			selected = append(selected, entry)
		}
	}
	return selected
}
