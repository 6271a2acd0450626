package ranking

import (
	"regexp"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

var (
	punctuationRe = regexp.MustCompile(`[^\w\s]`)
	digitsRe      = regexp.MustCompile(`\d+`)
)

var (
	langOnce   sync.Once
	stopwords  map[string]struct{}
	lemmatizer *golem.Lemmatizer
)

// initLanguage builds the stopword set and the English lemmatizer once. The
// golem dictionary is embedded in the package, so construction can only fail
// on a corrupted build; in that case lemmatization degrades to identity.
func initLanguage() {
	stopwords = make(map[string]struct{}, len(englishStopwords))
	for _, w := range englishStopwords {
		stopwords[w] = struct{}{}
	}
	if lem, err := golem.New(en.New()); err == nil {
		lemmatizer = lem
	}
}

// lemma reduces a token to its dictionary form.
func lemma(token string) string {
	if lemmatizer == nil {
		return token
	}
	return lemmatizer.Lemma(token)
}

// Preprocess turns raw text into lowercase, lemmatized content tokens.
// Punctuation and digits are stripped, stopwords removed. The output order
// follows the input text, which keeps downstream scoring deterministic.
func Preprocess(text string) []string {
	langOnce.Do(initLanguage)

	text = strings.ToLower(text)
	text = punctuationRe.ReplaceAllString(text, " ")
	text = digitsRe.ReplaceAllString(text, " ")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, skip := stopwords[field]; skip {
			continue
		}
		tokens = append(tokens, lemma(field))
	}
	return tokens
}
