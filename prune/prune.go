// Package prune deletes downloads older than a number of days.
package prune

import (
	"os"
	"path/filepath"
	"time"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/log"
)

const day = 24 * time.Hour

// Pruner removes old files. Now is the clock used to age them.
type Pruner struct {
	Now func() time.Time
}

// Prune removes files under dir last modified more than maxAgeDays ago.
func Prune(dir string, maxAgeDays int) int {
	return Pruner{Now: time.Now}.Prune(dir, maxAgeDays)
}

// Prune walks dir and returns the number of files deleted.
// Per-file errors are logged and skipped. A missing dir removes nothing.
func (p Pruner) Prune(dir string, maxAgeDays int) int {
	fs := filesystem.API()

	if exists, _ := fs.DirExists(dir); !exists {
		log.Infof("prune: %s does not exist", dir)
		return 0
	}

	now := p.now()
	removed := 0

	_ = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warnf("prune: %s: %v", path, err)
			return nil
		}

		if info.IsDir() {
			return nil
		}

		age := int(now.Sub(info.ModTime()) / day)
		if age <= maxAgeDays {
			return nil
		}

		if err := fs.Remove(path); err != nil {
			log.Warnf("prune: remove %s: %v", path, err)
			return nil
		}

		log.Infof("prune: removed %s (%d days old)", path, age)
		removed++
		return nil
	})

	return removed
}

func (p Pruner) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// Empty removes the empty directories directly below dir and returns how many went.
func Empty(dir string) int {
	fs := filesystem.API()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if empty, err := fs.IsEmpty(path); err != nil || !empty {
			continue
		}

		if err := fs.Remove(path); err != nil {
			log.Warnf("prune: remove %s: %v", path, err)
			continue
		}
		removed++
	}

	return removed
}
