package input

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeTempList(t, `
example.com
# comment
test.org
  spaces.com
sub.example.com trailing content ignored
`)

	l := NewLoader()
	tokens, stats, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := []string{"example.com", "test.org", "spaces.com", "sub.example.com"}
	if len(tokens) != len(expected) {
		t.Fatalf("Load = %v, want %v", tokens, expected)
	}
	for i, token := range tokens {
		if token != expected[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, token, expected[i])
		}
	}

	if stats.Lines != 6 {
		t.Errorf("stats.Lines = %d, want 6", stats.Lines)
	}
	if stats.Skipped != 2 {
		t.Errorf("stats.Skipped = %d, want 2", stats.Skipped)
	}
}

func TestLoaderLoadEmptyFile(t *testing.T) {
	path := writeTempList(t, "")

	l := NewLoader()
	tokens, stats, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("Load = %v, want empty", tokens)
	}
	if stats.Lines != 0 {
		t.Errorf("stats.Lines = %d, want 0", stats.Lines)
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	l := NewLoader()
	if _, _, err := l.Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load on missing file succeeded, want error")
	}
}
