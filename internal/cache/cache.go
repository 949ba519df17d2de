// Package cache stores small JSON documents, such as podcast directory lookups, under the cache directory.
package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/where"
)

const TTL = 7 * 24 * time.Hour

func dir() string {
	return filepath.Join(where.Cache(), "lookups")
}

// Key derives a stable entry name from a query and the namespace it belongs to.
func Key(query, namespace string) string {
	normalized := strings.ToLower(strings.ReplaceAll(query, " ", "")) + namespace
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// Read decodes the entry into target if it exists and is younger than TTL.
func Read(key string, target any) bool {
	path := filepath.Join(dir(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write stores data as the entry.
func Write(key string, data any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		return err
	}

	_, err := filesystem.WriteAtomic(filepath.Join(dir(), key), &buf, 0o644)
	return err
}

// CollectGarbage removes expired entries.
func CollectGarbage() {
	root := dir()
	if exists, _ := filesystem.API().DirExists(root); !exists {
		return
	}

	err := filesystem.API().Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > TTL {
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				log.Warnf("cache: %v", err)
			}
		}
		return nil
	})

	if err != nil {
		log.Warnf("cache: %v", err)
	}
}
