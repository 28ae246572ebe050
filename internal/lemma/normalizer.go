package lemma

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Algorithm names accepted by NewForAlgorithm.
const (
	AlgorithmLemma = "lemma"
	AlgorithmStem  = "stem"
)

// Reducer maps a single lower-cased token to its canonical form.
type Reducer interface {
	Reduce(token string) string
}

// Normalizer lower-cases and reduces every whitespace-delimited token of a
// text. Tokens are rejoined with single spaces in their original order.
type Normalizer struct {
	reducer Reducer
}

// NewNormalizer creates a normalizer backed by the given reducer.
func NewNormalizer(r Reducer) *Normalizer {
	return &Normalizer{reducer: r}
}

// NewForAlgorithm creates a normalizer for a named algorithm ("lemma" or
// "stem"). dictionaryFile optionally extends the lemma dictionary.
func NewForAlgorithm(algorithm, dictionaryFile string) (*Normalizer, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmLemma:
		l, err := NewLemmatizer()
		if err != nil {
			return nil, err
		}
		if dictionaryFile != "" {
			if err := l.LoadDictionaryFile(dictionaryFile); err != nil {
				return nil, err
			}
		}
		return NewNormalizer(l), nil
	case AlgorithmStem:
		return NewNormalizer(Stemmer{}), nil
	default:
		return nil, fmt.Errorf("unknown normalizer algorithm %q", algorithm)
	}
}

// Normalize returns the canonical form of text. The empty string normalizes to
// the empty string. Punctuation attached to a token stays part of it.
func (n *Normalizer) Normalize(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}

	// Casers carry state and must not be shared across goroutines.
	lower := cases.Lower(language.Und)
	for i, tok := range tokens {
		tokens[i] = n.reducer.Reduce(lower.String(tok))
	}
	return strings.Join(tokens, " ")
}

// Stemmer reduces tokens with the Snowball English stemmer.
type Stemmer struct{}

// Reduce returns the Snowball stem of token, or token itself if stemming fails.
func (Stemmer) Reduce(token string) string {
	stemmed, err := snowball.Stem(token, "english", true)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}
