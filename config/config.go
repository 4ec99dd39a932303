package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the seqprep tool.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Vocab   VocabConfig   `yaml:"vocab"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds pair-preparation configuration.
type DataConfig struct {
	SrcMaxLen int      `yaml:"src_max_len"`
	TgtMaxLen int      `yaml:"tgt_max_len"`
	Tokenizer string   `yaml:"tokenizer"` // "space" or "word"
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
}

// VocabConfig holds vocabulary-reading configuration.
type VocabConfig struct {
	MaxSize int `yaml:"max_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			SrcMaxLen: 50,
			TgtMaxLen: 50,
			Tokenizer: "space",
			Includes:  []string{"**/*.tsv", "**/*.txt"},
			Excludes:  []string{"**/.seqprep/**", "**/.git/**"},
		},
		Vocab: VocabConfig{
			MaxSize: 50000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for seqprep.yaml).
func LoadFromDir(dir string) (*Config, error) {
	// Try seqprep.yaml in the directory
	path := filepath.Join(dir, "seqprep.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Try .seqprep/config.yaml
	path = filepath.Join(dir, ".seqprep", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DatasetDBPath returns the path to the prepared-dataset database.
func DatasetDBPath(dir string) string {
	return filepath.Join(dir, ".seqprep", "dataset.db")
}

// EnsureDataDir ensures the .seqprep directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".seqprep"), 0755)
}
