package usecase

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"seqprep/internal/domain"
	"seqprep/internal/port"
)

// maxLineBytes bounds a single input line; longer lines fail the load.
const maxLineBytes = 1 << 20

// ProgressFunc is invoked with the running entry count as a load advances.
type ProgressFunc func(processed int)

// PrepareUseCase turns raw parallel text into length-filtered token pairs.
type PrepareUseCase struct {
	tokenizer port.Tokenizer
	log       port.Logger
	srcMaxLen int
	tgtMaxLen int
}

// NewPrepareUseCase creates a new prepare use case.
func NewPrepareUseCase(tokenizer port.Tokenizer, log port.Logger, srcMaxLen, tgtMaxLen int) *PrepareUseCase {
	return &PrepareUseCase{
		tokenizer: tokenizer,
		log:       log,
		srcMaxLen: srcMaxLen,
		tgtMaxLen: tgtMaxLen,
	}
}

// FromFile reads a tab-separated pair file where each line holds a source
// sentence and a target sentence. Both sides are tokenized and pairs with a
// side exceeding its length cap are dropped silently. Any line that does not
// split into exactly two fields aborts the whole load: the offending line is
// logged and no partial result is returned.
func (u *PrepareUseCase) FromFile(path string, progress ProgressFunc) ([]domain.Pair, error) {
	u.log.Infof("reading pairs from %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs []domain.Pair
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lines := 0
	for scanner.Scan() {
		raw := scanner.Text()
		lines++

		src, tgt, err := splitPairLine(raw)
		if err != nil {
			u.log.Errorf("error when reading line: %s", raw)
			return nil, err
		}

		pair := domain.Pair{
			Source: u.tokenizer.Tokenize(src),
			Target: u.tokenizer.Tokenize(tgt),
		}
		if pair.WithinLimits(u.srcMaxLen, u.tgtMaxLen) {
			pairs = append(pairs, pair)
		}

		if progress != nil {
			progress(lines)
		}
	}
	if err := scanner.Err(); err != nil {
		u.log.Errorf("error when reading %s: %v", path, err)
		return nil, err
	}

	u.log.Infof("number of pairs: %d", len(pairs))
	return pairs, nil
}

// FromLists pairs up two parallel slices of raw sentences. The slices must
// have the same number of entries; a mismatch fails before any processing.
func (u *PrepareUseCase) FromLists(srcList, tgtList []string, progress ProgressFunc) ([]domain.Pair, error) {
	if len(srcList) != len(tgtList) {
		return nil, fmt.Errorf("source list and target list have different numbers of entries: %d != %d",
			len(srcList), len(tgtList))
	}

	u.log.Infof("preparing pairs from %d entries", len(srcList))

	var pairs []domain.Pair
	for i := range srcList {
		pair := domain.Pair{
			Source: u.tokenizer.Tokenize(srcList[i]),
			Target: u.tokenizer.Tokenize(tgtList[i]),
		}
		if pair.WithinLimits(u.srcMaxLen, u.tgtMaxLen) {
			pairs = append(pairs, pair)
		}

		if progress != nil {
			progress(i + 1)
		}
	}

	u.log.Infof("number of pairs: %d", len(pairs))
	return pairs, nil
}

// splitPairLine splits a data line into its source and target fields.
// Surrounding whitespace is trimmed first; exactly one tab separator is
// required, so a line with no tab, extra tabs, or no content is malformed.
func splitPairLine(raw string) (string, string, error) {
	fields := strings.Split(strings.TrimSpace(raw), "\t")
	if len(fields) != 2 {
		return "", "", fmt.Errorf("line does not split into source and target fields: %q", raw)
	}
	return fields[0], fields[1], nil
}
