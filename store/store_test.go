package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	fs := NewFileStore(path)

	if _, ok, err := fs.Get("missing"); ok || err != nil {
		t.Fatalf("Get on missing file = %v, %v", ok, err)
	}

	if err := fs.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := fs.Set("b", "two"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened := NewFileStore(path)
	v, ok, err := reopened.Get("a")
	if err != nil || !ok || v != "1" {
		t.Errorf("Get(a) = %q, %v, %v", v, ok, err)
	}
	v, ok, err = reopened.Get("b")
	if err != nil || !ok || v != "two" {
		t.Errorf("Get(b) = %q, %v, %v", v, ok, err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	fs := NewFileStore(path)
	if _, _, err := fs.Get("a"); err == nil {
		t.Error("expected decode error")
	}
	if err := fs.Set("a", "3"); err != nil {
		t.Fatalf("Set over corrupt file: %v", err)
	}
	if v, ok, err := fs.Get("a"); err != nil || !ok || v != "3" {
		t.Errorf("Get(a) = %q, %v, %v", v, ok, err)
	}
}

func TestHighScores(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"missing", "", false, 0},
		{"stored", "42", true, 42},
		{"padded", " 7\n", true, 7},
		{"garbage", "abc", true, 0},
		{"negative", "-3", true, 0},
	}
	for _, tt := range tests {
		ms := NewMemoryStore()
		if tt.set {
			ms.Set(HighScoreKey, tt.value)
		}
		if got := NewHighScores(ms).LoadHighScore(); got != tt.want {
			t.Errorf("%s: LoadHighScore() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestHighScoresPersistAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := NewHighScores(NewFileStore(path)).SaveHighScore(12); err != nil {
		t.Fatalf("SaveHighScore: %v", err)
	}
	if got := NewHighScores(NewFileStore(path)).LoadHighScore(); got != 12 {
		t.Errorf("LoadHighScore() = %d, want 12", got)
	}

	raw, _, _ := NewFileStore(path).Get(HighScoreKey)
	if raw != "12" {
		t.Errorf("stored value = %q, want base-10 string", raw)
	}
}
