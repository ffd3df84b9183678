package history

import (
	"path/filepath"
	"testing"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "lookups.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer store.Close()

	for _, word := range []string{"你好", "世界", "中国"} {
		if err := store.Record(word, 2); err != nil {
			t.Fatalf("recording %q: %v", word, err)
		}
	}

	got, err := store.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent returned %d lookups, want 2", len(got))
	}
	// Newest first.
	if got[0].Word != "中国" || got[1].Word != "世界" {
		t.Errorf("recent order = %q, %q", got[0].Word, got[1].Word)
	}
	if got[0].Matches != 2 {
		t.Errorf("matches = %d, want 2", got[0].Matches)
	}
	if got[0].At.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestRecentEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "lookups.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer store.Close()

	got, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no lookups, got %d", len(got))
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "lookups.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("opening store in nested dir: %v", err)
	}
	store.Close()
}
