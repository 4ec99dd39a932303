package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"seqprep/config"
	"seqprep/internal/adapter/store"
	"seqprep/internal/usecase"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab <path>",
	Short: "Read a vocabulary file into the dataset store",
	Long: `Vocab reads a newline-delimited vocabulary file (one token per line) into a
set capped at vocab.max_size distinct entries, then stores it alongside the
prepared pairs.

Example:
  seqprep vocab vocab/en.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runVocab,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	cfg := GetConfig()

	uc := usecase.NewVocabUseCase(log, cfg.Vocab.MaxSize)
	vocab, err := uc.Read(path)
	if err != nil {
		return fmt.Errorf("reading vocabulary failed: %w", err)
	}

	if err := config.EnsureDataDir(GetRootDir()); err != nil {
		return fmt.Errorf("failed to create .seqprep directory: %w", err)
	}
	dbPath := config.DatasetDBPath(GetRootDir())
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open dataset store: %w", err)
	}
	defer st.Close()

	if err := st.PutVocabulary(vocab); err != nil {
		return fmt.Errorf("failed to store vocabulary: %w", err)
	}

	stats, err := st.GetStats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}
	stats.VocabSize = vocab.Size()
	if err := st.UpdateStats(stats); err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
	}

	fmt.Printf("Vocabulary size: %d\n", vocab.Size())
	fmt.Printf("Stored at:       %s\n", dbPath)

	return nil
}
