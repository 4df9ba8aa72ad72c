package manifest

import (
	"path/filepath"
	"testing"

	"github.com/shanelightowler/crypto-daily-mentions/pkg/storage"
)

func TestLoadMissingFile(t *testing.T) {
	store := &storage.Storage{}
	m := Load(store, filepath.Join(t.TempDir(), "manifest.json"))
	if len(m) != 0 {
		t.Errorf("missing manifest should load empty, got %d entries", len(m))
	}
}

func TestUpsertReplacesByDate(t *testing.T) {
	var m Manifest
	m = m.Upsert("2026-08-01", "a.json")
	m = m.Upsert("2026-08-02", "b.json")
	m = m.Upsert("2026-08-01", "a-v2.json")

	if len(m) != 2 {
		t.Fatalf("got %d entries, want 2 (one per date)", len(m))
	}
	if m[0].Date != "2026-08-01" || m[0].File != "a-v2.json" {
		t.Errorf("entry 0 = %+v, want replaced 2026-08-01 -> a-v2.json", m[0])
	}
	if m[1].Date != "2026-08-02" {
		t.Errorf("entry 1 = %+v, want 2026-08-02", m[1])
	}
}

func TestUpsertKeepsSorted(t *testing.T) {
	var m Manifest
	m = m.Upsert("2026-08-03", "c.json")
	m = m.Upsert("2026-08-01", "a.json")
	m = m.Upsert("2026-08-02", "b.json")

	for i := 1; i < len(m); i++ {
		if m[i-1].Date > m[i].Date {
			t.Fatalf("manifest not sorted: %+v", m)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := &storage.Storage{}
	path := filepath.Join(t.TempDir(), "manifest.json")

	var m Manifest
	m = m.Upsert("2026-08-02", "b.json")
	m = m.Upsert("2026-08-01", "a.json")
	if err := m.Save(store, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := Load(store, path)
	if len(got) != 2 || got[0].Date != "2026-08-01" || got[1].Date != "2026-08-02" {
		t.Errorf("loaded %+v, want sorted two entries", got)
	}
}
