package parsing

import (
	"sync"

	prose "github.com/jdkato/prose/v2"
)

// NameRecognizer finds a person's name within a line of text. Implementations
// return "" when no name is recognized. A nil recognizer disables NER and
// leaves name extraction to the short-line heuristic.
type NameRecognizer interface {
	PersonName(text string) string
}

var (
	proseOnce     sync.Once
	proseInstance *proseRecognizer
)

// DefaultNameRecognizer returns the process-wide prose-backed recognizer.
// The underlying model is shared, built once, and read-only afterwards, so
// the recognizer is safe for concurrent use.
func DefaultNameRecognizer() NameRecognizer {
	proseOnce.Do(func() {
		proseInstance = &proseRecognizer{}
	})
	return proseInstance
}

// proseRecognizer wraps the prose NLP pipeline's named-entity recognition.
type proseRecognizer struct{}

func (r *proseRecognizer) PersonName(text string) string {
	doc, err := prose.NewDocument(text, prose.WithExtraction(true))
	if err != nil {
		return ""
	}
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			return ent.Text
		}
	}
	return ""
}
