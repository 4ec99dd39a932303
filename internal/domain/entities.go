package domain

import "sort"

// Pair is one tokenized (source, target) training example. Pairs are owned
// by the caller once returned and are never mutated by the loaders.
type Pair struct {
	Source []string
	Target []string
}

// WithinLimits reports whether both sides of the pair fit the per-side
// token caps.
func (p Pair) WithinLimits(srcMaxLen, tgtMaxLen int) bool {
	return len(p.Source) <= srcMaxLen && len(p.Target) <= tgtMaxLen
}

// Vocabulary is a set of distinct tokens. Capacity limits are enforced by
// the reader, not by the type.
type Vocabulary map[string]struct{}

func NewVocabulary() Vocabulary {
	return make(Vocabulary)
}

// Add inserts a token. Duplicate insertions are no-ops.
func (v Vocabulary) Add(token string) {
	v[token] = struct{}{}
}

func (v Vocabulary) Has(token string) bool {
	_, ok := v[token]
	return ok
}

func (v Vocabulary) Size() int {
	return len(v)
}

// Tokens returns the vocabulary entries in sorted order.
func (v Vocabulary) Tokens() []string {
	tokens := make([]string, 0, len(v))
	for token := range v {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Stats describes a prepared dataset.
type Stats struct {
	TotalPairs   int
	VocabSize    int
	AvgSourceLen float64
	AvgTargetLen float64
}
