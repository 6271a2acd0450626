package ranking

import (
	"math"
	"sort"
)

// tfidf computes TF-IDF scores for every token of doc against the corpus.
// Term frequency is normalized by document length; inverse document
// frequency is log(numDocs / (1 + docsContaining)), which goes negative for
// tokens present in every corpus document and thereby demotes shared
// vocabulary.
func tfidf(doc []string, corpus [][]string) map[string]float64 {
	if len(doc) == 0 {
		return map[string]float64{}
	}

	tf := make(map[string]float64, len(doc))
	for _, token := range doc {
		tf[token]++
	}
	for token := range tf {
		tf[token] /= float64(len(doc))
	}

	memberships := make([]map[string]struct{}, len(corpus))
	for i, tokens := range corpus {
		memberships[i] = make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			memberships[i][token] = struct{}{}
		}
	}

	scores := make(map[string]float64, len(tf))
	for token, freq := range tf {
		containing := 0
		for _, member := range memberships {
			if _, ok := member[token]; ok {
				containing++
			}
		}
		idf := math.Log(float64(len(corpus)) / float64(1+containing))
		scores[token] = freq * idf
	}
	return scores
}

// topTerms returns up to n tokens ordered by descending score. Ties break
// alphabetically so rankings do not depend on map iteration order.
func topTerms(scores map[string]float64, n int) []string {
	terms := make([]string, 0, len(scores))
	for token := range scores {
		terms = append(terms, token)
	}
	sort.Slice(terms, func(i, j int) bool {
		if scores[terms[i]] != scores[terms[j]] {
			return scores[terms[i]] > scores[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
