// Package filesystem holds the afero backend every package reads and writes through.
// Tests swap it for an in-memory filesystem.
package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// WriteAtomic streams r into a sibling temp file and renames it over path.
// On any error the temp file is removed and path is left untouched.
func WriteAtomic(path string, r io.Reader, perm os.FileMode) (written int64, err error) {
	fs := API()

	if err = fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return 0, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	tmp, err := fs.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = fs.Remove(tmp.Name())
		}
	}()

	written, err = io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return written, fmt.Errorf("write %s: %w", path, err)
	}

	if err = fs.Chmod(tmp.Name(), perm); err != nil {
		return written, err
	}

	if err = fs.Rename(tmp.Name(), path); err != nil {
		return written, fmt.Errorf("rename into %s: %w", path, err)
	}

	return written, nil
}
