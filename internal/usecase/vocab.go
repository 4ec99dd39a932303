package usecase

import (
	"bufio"
	"os"
	"strings"

	"seqprep/internal/domain"
	"seqprep/internal/port"
)

// DefaultMaxVocab is the vocabulary cap applied when none is configured.
const DefaultMaxVocab = 50000

// VocabUseCase reads newline-delimited vocabulary files into a capped set.
type VocabUseCase struct {
	log     port.Logger
	maxSize int
}

// NewVocabUseCase creates a new vocabulary use case. maxSize caps the number
// of distinct tokens read; once reached, the rest of the file is not read.
func NewVocabUseCase(log port.Logger, maxSize int) *VocabUseCase {
	return &VocabUseCase{log: log, maxSize: maxSize}
}

// Read loads a vocabulary file, one token per line. Duplicate lines occupy a
// single slot and blank lines insert the empty-string token.
func (u *VocabUseCase) Read(path string) (domain.Vocabulary, error) {
	u.log.Infof("reading vocabulary from %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vocab := domain.NewVocabulary()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if vocab.Size() >= u.maxSize {
			break
		}
		vocab.Add(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		u.log.Errorf("error when reading %s: %v", path, err)
		return nil, err
	}

	u.log.Infof("size of vocabulary: %d", vocab.Size())
	return vocab, nil
}
