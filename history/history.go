// Package history keeps a ledger of finished downloads.
package history

import (
	"sort"

	"github.com/metafates/gache"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/where"
)

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every entry keyed by file path.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Sorted returns the entries newest first.
func Sorted() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(saved))
	for _, e := range saved {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DownloadedAt.After(entries[j].DownloadedAt)
	})
	return entries, nil
}

// Save records a download of ep from audioURL into path.
// Saving the same path again replaces the entry.
func Save(ep *source.Episode, audioURL, path, kind string, size int64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	entry := newEntry(ep, audioURL, path, kind, size)
	saved[entry.key()] = entry

	return cacher.Set(saved)
}

func Remove(entry *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, entry.key())
	return cacher.Set(saved)
}

// Clear empties the ledger.
func Clear() error {
	return cacher.Set(make(map[string]*Entry))
}
