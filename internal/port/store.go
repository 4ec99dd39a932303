package port

import "seqprep/internal/domain"

// PairStore persists prepared pairs, vocabularies and dataset statistics.
type PairStore interface {
	PutPairs(pairs []domain.Pair) error
	ListPairs() ([]domain.Pair, error)
	CountPairs() (int, error)
	ClearPairs() error

	PutVocabulary(v domain.Vocabulary) error
	GetVocabulary() (domain.Vocabulary, error)

	UpdateStats(s domain.Stats) error
	GetStats() (domain.Stats, error)

	Close() error
}
