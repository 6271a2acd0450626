package ranking

import "strings"

const (
	// numGapTerms is how many top job-description terms are considered as
	// potential skill gaps.
	numGapTerms = 30

	// minGapTermLength filters out abbreviations and noise tokens from the
	// gap list.
	minGapTermLength = 3
)

// IdentifySkillGaps returns job-description terms that the résumé's skill
// list does not cover. The job's top TF-IDF terms are checked against both
// the preprocessed skill tokens and, as a substring, against each raw skill
// string, so "Learning" is not reported as a gap when the résumé lists
// "Machine Learning".
func IdentifySkillGaps(resumeSkills []string, jobDescription string) []string {
	jobTokens := Preprocess(jobDescription)
	skillTokens := Preprocess(strings.Join(resumeSkills, " "))

	scores := tfidf(jobTokens, [][]string{jobTokens, skillTokens})
	candidates := topTerms(scores, numGapTerms)

	covered := make(map[string]struct{}, len(skillTokens))
	for _, token := range skillTokens {
		covered[token] = struct{}{}
	}

	lowerSkills := make([]string, len(resumeSkills))
	for i, skill := range resumeSkills {
		lowerSkills[i] = strings.ToLower(skill)
	}

	gaps := make([]string, 0, len(candidates))
	for _, term := range candidates {
		if len(term) < minGapTermLength {
			continue
		}
		if _, ok := covered[term]; ok {
			continue
		}
		if substringOfAny(term, lowerSkills) {
			continue
		}
		gaps = append(gaps, term)
	}
	return gaps
}

func substringOfAny(term string, haystacks []string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, term) {
			return true
		}
	}
	return false
}
