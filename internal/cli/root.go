package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"seqprep/config"
	"seqprep/internal/adapter/logging"
	"seqprep/internal/port"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	log     port.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seqprep",
	Short: "Prepare parallel-text datasets for sequence-to-sequence training",
	Long: `seqprep reads tab-separated source/target sentence pairs, tokenizes them,
filters out over-length examples, and reads capped vocabulary files.
Prepared datasets are stored in .seqprep/dataset.db for downstream consumers.

Example usage:
  seqprep prepare data/train.tsv  # Prepare a single pair file
  seqprep prepare corpus/         # Prepare every data file in a directory
  seqprep vocab vocab/en.txt      # Read and store a vocabulary file
  seqprep stats                   # Show stored dataset statistics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log = logging.New(cfg.Logging.Level)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seqprep.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
