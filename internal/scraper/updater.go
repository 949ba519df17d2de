package scraper

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/radiodl-cli/radiodl/filesystem"
)

// Fetcher downloads a document. network.Session satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Install downloads the script at remoteURL into localPath.
// It reports false without writing when the local copy is already identical.
func Install(ctx context.Context, fetcher Fetcher, remoteURL, localPath string) (bool, error) {
	body, err := fetcher.Fetch(ctx, remoteURL)
	if err != nil {
		return false, err
	}

	if local, err := filesystem.API().ReadFile(localPath); err == nil && sha256.Sum256(local) == sha256.Sum256(body) {
		return false, nil
	}

	if _, err := filesystem.WriteAtomic(localPath, bytes.NewReader(body), 0o644); err != nil {
		return false, fmt.Errorf("install %s: %w", localPath, err)
	}

	Forget(localPath)
	return true, nil
}
