package analyzer

import (
	"fmt"
	"strings"
	"unicode"

	"seqprep/internal/port"
)

// SpaceTokenizer splits text on the single space character only. Runs of
// spaces produce empty tokens, so joining the tokens back with a space
// reconstructs the input exactly.
type SpaceTokenizer struct{}

// NewSpaceTokenizer creates the default tokenizer.
func NewSpaceTokenizer() *SpaceTokenizer {
	return &SpaceTokenizer{}
}

// Tokenize splits text into tokens.
func (t *SpaceTokenizer) Tokenize(text string) []string {
	return strings.Split(text, " ")
}

// WordTokenizer splits text on unicode word boundaries. Unlike
// SpaceTokenizer it never produces empty tokens and drops punctuation.
type WordTokenizer struct{}

// NewWordTokenizer creates a word-boundary tokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize splits text into words.
func (t *WordTokenizer) Tokenize(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// New returns the tokenizer registered under name. An empty name selects
// the default space tokenizer.
func New(name string) (port.Tokenizer, error) {
	switch name {
	case "", "space":
		return NewSpaceTokenizer(), nil
	case "word":
		return NewWordTokenizer(), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer: %s", name)
	}
}
