package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"seqprep/internal/domain"
	"seqprep/internal/port"
)

var (
	bucketPairs = []byte("pairs")
	bucketVocab = []byte("vocab")
	bucketStats = []byte("stats")
	keyVocab    = []byte("tokens")
	keyStats    = []byte("dataset_stats")
)

// BoltStore persists prepared pairs, vocabularies and dataset statistics.
type BoltStore struct {
	db *bbolt.DB
}

var _ port.PairStore = (*BoltStore)(nil)

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketPairs, bucketVocab, bucketStats}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type pairMeta struct {
	Source []string `json:"source"`
	Target []string `json:"target"`
}

type statsMeta struct {
	TotalPairs   int     `json:"total_pairs"`
	VocabSize    int     `json:"vocab_size"`
	AvgSourceLen float64 `json:"avg_source_len"`
	AvgTargetLen float64 `json:"avg_target_len"`
}

// PutPairs appends pairs under monotonically increasing keys, preserving
// their order across ListPairs.
func (s *BoltStore) PutPairs(pairs []domain.Pair) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketPairs)
		for _, p := range pairs {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			data, err := json.Marshal(pairMeta{Source: p.Source, Target: p.Target})
			if err != nil {
				return err
			}
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, seq)
			if err := b.Put(key, data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) ListPairs() ([]domain.Pair, error) {
	var pairs []domain.Pair
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPairs).ForEach(func(k, v []byte) error {
			var meta pairMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			pairs = append(pairs, domain.Pair{Source: meta.Source, Target: meta.Target})
			return nil
		})
	})
	return pairs, err
}

func (s *BoltStore) CountPairs() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketPairs).Stats().KeyN
		return nil
	})
	return n, err
}

// ClearPairs drops all stored pairs and resets the key sequence.
func (s *BoltStore) ClearPairs() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketPairs); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketPairs)
		return err
	})
}

func (s *BoltStore) PutVocabulary(v domain.Vocabulary) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(v.Tokens())
		if err != nil {
			return err
		}
		return tx.Bucket(bucketVocab).Put(keyVocab, data)
	})
}

func (s *BoltStore) GetVocabulary() (domain.Vocabulary, error) {
	vocab := domain.NewVocabulary()
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketVocab).Get(keyVocab)
		if data == nil {
			return fmt.Errorf("no vocabulary stored")
		}
		var tokens []string
		if err := json.Unmarshal(data, &tokens); err != nil {
			return err
		}
		for _, token := range tokens {
			vocab.Add(token)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vocab, nil
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(statsMeta{
			TotalPairs:   stats.TotalPairs,
			VocabSize:    stats.VocabSize,
			AvgSourceLen: stats.AvgSourceLen,
			AvgTargetLen: stats.AvgTargetLen,
		})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

// GetStats returns the stored statistics, or zero stats when none were
// written yet.
func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		var meta statsMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		stats = domain.Stats{
			TotalPairs:   meta.TotalPairs,
			VocabSize:    meta.VocabSize,
			AvgSourceLen: meta.AvgSourceLen,
			AvgTargetLen: meta.AvgTargetLen,
		}
		return nil
	})
	return stats, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
