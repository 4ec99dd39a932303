package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Data.SrcMaxLen != 50 {
		t.Errorf("expected SrcMaxLen=50, got %d", cfg.Data.SrcMaxLen)
	}
	if cfg.Data.TgtMaxLen != 50 {
		t.Errorf("expected TgtMaxLen=50, got %d", cfg.Data.TgtMaxLen)
	}
	if cfg.Data.Tokenizer != "space" {
		t.Errorf("expected tokenizer=space, got %s", cfg.Data.Tokenizer)
	}
	if cfg.Vocab.MaxSize != 50000 {
		t.Errorf("expected MaxSize=50000, got %d", cfg.Vocab.MaxSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level=info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "seqprep.yaml")

	content := `
data:
  src_max_len: 20
  tgt_max_len: 25
  tokenizer: word
vocab:
  max_size: 100
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Data.SrcMaxLen != 20 {
		t.Errorf("expected SrcMaxLen=20, got %d", cfg.Data.SrcMaxLen)
	}
	if cfg.Data.TgtMaxLen != 25 {
		t.Errorf("expected TgtMaxLen=25, got %d", cfg.Data.TgtMaxLen)
	}
	if cfg.Data.Tokenizer != "word" {
		t.Errorf("expected tokenizer=word, got %s", cfg.Data.Tokenizer)
	}
	if cfg.Vocab.MaxSize != 100 {
		t.Errorf("expected MaxSize=100, got %d", cfg.Vocab.MaxSize)
	}
	// Untouched sections keep their defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level=info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "seqprep.yaml")

	content := `
vocab:
  max_size: 1234
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Vocab.MaxSize != 1234 {
		t.Errorf("expected MaxSize=1234, got %d", cfg.Vocab.MaxSize)
	}
}

func TestLoadFromDir_NoConfig(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.SrcMaxLen != 50 {
		t.Errorf("expected defaults, got SrcMaxLen=%d", cfg.Data.SrcMaxLen)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "seqprep.yaml")

	cfg := DefaultConfig()
	cfg.Data.SrcMaxLen = 7
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Data.SrcMaxLen != 7 {
		t.Errorf("expected SrcMaxLen=7, got %d", loaded.Data.SrcMaxLen)
	}
}

func TestDatasetDBPath(t *testing.T) {
	path := DatasetDBPath("/some/dir")
	want := filepath.Join("/some/dir", ".seqprep", "dataset.db")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}
