package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, paths []string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("src\ttgt\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestWalk_IncludesOnly(t *testing.T) {
	root := writeTree(t, []string{"train.tsv", "notes.md", "sub/dev.tsv"})

	walker := NewWalker([]string{"**/*.tsv"}, nil)
	files, err := walker.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f.Path) != ".tsv" {
			t.Errorf("unexpected file: %s", f.Path)
		}
	}
}

func TestWalk_ExcludesDirectories(t *testing.T) {
	root := writeTree(t, []string{"train.tsv", "skip/hidden.tsv"})

	walker := NewWalker([]string{"**/*.tsv"}, []string{"skip/**"})
	files, err := walker.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0].Path) != "train.tsv" {
		t.Errorf("expected train.tsv, got %s", files[0].Path)
	}
}

func TestWalk_DefaultIncludesEverything(t *testing.T) {
	root := writeTree(t, []string{"a.tsv", "b.txt"})

	walker := NewWalker(nil, nil)
	files, err := walker.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	walker := NewWalker(nil, nil)
	if _, err := walker.Walk(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing root")
	}
}
