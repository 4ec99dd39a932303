package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"seqprep/config"
	"seqprep/internal/adapter/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for the stored dataset",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := config.DatasetDBPath(GetRootDir())

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open dataset store (run 'seqprep prepare' first): %w", err)
	}
	defer st.Close()

	stats, err := st.GetStats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}
	count, err := st.CountPairs()
	if err != nil {
		return fmt.Errorf("failed to count pairs: %w", err)
	}

	fmt.Printf("Dataset: %s\n", dbPath)
	fmt.Printf("  Stored pairs:    %d\n", count)
	fmt.Printf("  Vocabulary size: %d\n", stats.VocabSize)
	if stats.TotalPairs > 0 {
		fmt.Printf("  Avg source len:  %.1f tokens\n", stats.AvgSourceLen)
		fmt.Printf("  Avg target len:  %.1f tokens\n", stats.AvgTargetLen)
	}

	return nil
}
