package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"seqprep/config"
	"seqprep/internal/adapter/analyzer"
	"seqprep/internal/adapter/fs"
	"seqprep/internal/adapter/store"
	"seqprep/internal/domain"
	"seqprep/internal/usecase"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare [path]",
	Short: "Tokenize and length-filter parallel-text pair files",
	Long: `Prepare reads tab-separated pair files (one "source<TAB>target" example per
line), tokenizes both sides, drops pairs exceeding the configured length caps,
and stores the surviving pairs in .seqprep/dataset.db. Each run replaces the
previously stored pairs.

Given a directory, every file matching the configured include patterns is
prepared. A malformed line aborts the whole run.

Examples:
  seqprep prepare data/train.tsv  # Prepare a single file
  seqprep prepare corpus/         # Prepare all matching files in a directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrepare,
}

func init() {
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	cfg := GetConfig()

	// Collect data files
	var files []string
	if info.IsDir() {
		walker := fs.NewWalker(cfg.Data.Includes, cfg.Data.Excludes)
		found, err := walker.Walk(path)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", path, err)
		}
		for _, f := range found {
			files = append(files, f.Path)
		}
		if len(files) == 0 {
			return fmt.Errorf("no data files matched under %s", path)
		}
	} else {
		files = []string{path}
	}

	tokenizer, err := analyzer.New(cfg.Data.Tokenizer)
	if err != nil {
		return err
	}
	prep := usecase.NewPrepareUseCase(tokenizer, log, cfg.Data.SrcMaxLen, cfg.Data.TgtMaxLen)

	// Open the dataset store
	if err := config.EnsureDataDir(GetRootDir()); err != nil {
		return fmt.Errorf("failed to create .seqprep directory: %w", err)
	}
	dbPath := config.DatasetDBPath(GetRootDir())
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open dataset store: %w", err)
	}
	defer st.Close()

	// Each prepare run replaces the stored dataset
	if err := st.ClearPairs(); err != nil {
		return fmt.Errorf("failed to clear stored pairs: %w", err)
	}

	totalKept := 0
	srcTokens := 0
	tgtTokens := 0

	for _, file := range files {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription(fmt.Sprintf("Preparing %s", filepath.Base(file))),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)

		pairs, err := prep.FromFile(file, func(int) {
			_ = bar.Add(1)
		})
		if err != nil {
			return fmt.Errorf("preparing %s failed: %w", file, err)
		}
		_ = bar.Finish()

		if err := st.PutPairs(pairs); err != nil {
			return fmt.Errorf("failed to store pairs: %w", err)
		}

		totalKept += len(pairs)
		for _, p := range pairs {
			srcTokens += len(p.Source)
			tgtTokens += len(p.Target)
		}
	}

	stats := domain.Stats{TotalPairs: totalKept}
	if totalKept > 0 {
		stats.AvgSourceLen = float64(srcTokens) / float64(totalKept)
		stats.AvgTargetLen = float64(tgtTokens) / float64(totalKept)
	}
	if vocab, err := st.GetVocabulary(); err == nil {
		stats.VocabSize = vocab.Size()
	}
	if err := st.UpdateStats(stats); err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
	}

	// Print results
	fmt.Printf("\nPreparation complete:\n")
	fmt.Printf("  Files processed: %d\n", len(files))
	fmt.Printf("  Pairs kept:      %d\n", totalKept)
	if totalKept > 0 {
		fmt.Printf("  Avg source len:  %.1f tokens\n", stats.AvgSourceLen)
		fmt.Printf("  Avg target len:  %.1f tokens\n", stats.AvgTargetLen)
	}
	fmt.Printf("\nDataset stored at: %s\n", dbPath)

	return nil
}
