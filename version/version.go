// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/metafates/gache"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/network"
	"github.com/radiodl-cli/radiodl/where"
)

// ReleasesURL is the GitHub API endpoint of the latest release.
var ReleasesURL = "https://api.github.com/repos/radiodl-cli/radiodl/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest retrieves the most recent stable application version identifier from the remote update registry.
// The result is cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	body, err := network.NewSession(5*time.Second).Fetch(context.Background(), ReleasesURL)
	if err != nil {
		return
	}

	tag, err := jsonparser.GetString(body, "tag_name")
	if err != nil {
		return
	}

	if tag == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(tag, "v")
	_ = versionCacher.Set(version)
	return
}
