package history

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/radiodl-cli/radiodl/source"
)

// Entry records one finished download.
type Entry struct {
	Program      string    `json:"program"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	ListenURL    string    `json:"listen_url,omitempty"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	Kind         string    `json:"kind"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// key is the target path, which is unique per program and title.
func (e *Entry) key() string {
	return e.Path
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s : %s (%s, %s)", e.Program, e.Title, humanize.IBytes(uint64(e.Size)), humanize.Time(e.DownloadedAt))
}

func newEntry(ep *source.Episode, audioURL, path, kind string, size int64) *Entry {
	return &Entry{
		Program:      ep.Program,
		Title:        ep.Title,
		URL:          audioURL,
		ListenURL:    ep.ListenURL,
		Path:         path,
		Size:         size,
		Kind:         kind,
		DownloadedAt: time.Now(),
	}
}
