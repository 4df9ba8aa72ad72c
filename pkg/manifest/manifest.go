// Package manifest maintains the date-indexed list of persisted daily
// snapshot locations — the single source of truth for which days have been
// processed and where their output lives.
package manifest

import (
	"sort"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/storage"
)

// Manifest is the ordered collection of snapshot locations, at most one
// entry per date, sorted ascending by date.
type Manifest []models.ManifestEntry

// Load reads the manifest from path. A missing or unreadable file yields an
// empty manifest — the index is rebuilt entry by entry as days are processed.
func Load(store *storage.Storage, path string) Manifest {
	var m Manifest
	if err := store.LoadJSON(path, &m); err != nil {
		return Manifest{}
	}
	return m
}

// Save writes the manifest to path, sorted ascending by date.
func (m Manifest) Save(store *storage.Storage, path string) error {
	sort.Slice(m, func(i, j int) bool { return m[i].Date < m[j].Date })
	return store.SaveJSON(path, m)
}

// Upsert replaces any existing entry for the date and appends the new one,
// keeping the at-most-one-entry-per-date invariant.
func (m Manifest) Upsert(date, file string) Manifest {
	out := make(Manifest, 0, len(m)+1)
	for _, e := range m {
		if e.Date != date {
			out = append(out, e)
		}
	}
	out = append(out, models.ManifestEntry{Date: date, File: file})
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
