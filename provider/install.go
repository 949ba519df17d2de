package provider

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/radiodl-cli/radiodl/internal/scraper"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/network"
	"github.com/radiodl-cli/radiodl/where"
)

const installTimeout = 10 * time.Second

// Install fetches a Lua source from scriptURL into the sources directory.
// The script's file name must be the domain it serves, e.g. radio.example.lua.
// It reports whether the local copy changed.
func Install(ctx context.Context, fetcher scraper.Fetcher, scriptURL string) (string, bool, error) {
	u, err := url.Parse(scriptURL)
	if err != nil {
		return "", false, err
	}

	name := path.Base(u.Path)
	if !strings.HasSuffix(name, ".lua") || name == ".lua" {
		return "", false, fmt.Errorf("%s: not a lua script", scriptURL)
	}

	if fetcher == nil {
		fetcher = network.NewSession(installTimeout)
	}

	localPath := filepath.Join(where.Sources(), name)
	changed, err := scraper.Install(ctx, fetcher, scriptURL, localPath)
	if err != nil {
		return "", false, err
	}

	if changed {
		log.Infof("installed source %s from %s", name, scriptURL)
	}

	return localPath, changed, nil
}
