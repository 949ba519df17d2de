package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/util"
)

// StatusError is returned when a server answers with anything but 200.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// BrowserHeaders mimic a desktop Chrome navigating to a page in Spanish.
func BrowserHeaders() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", constant.UserAgent)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	h.Set("Accept-Language", "es-ES,es;q=0.9,en;q=0.8,en-US;q=0.7")
	h.Set("Connection", "keep-alive")
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Sec-Fetch-Dest", "document")
	h.Set("Sec-Fetch-Mode", "navigate")
	h.Set("Sec-Fetch-Site", "none")
	h.Set("Cache-Control", "max-age=0")
	return h
}

// Session carries the client, default headers and timeout used for one program.
type Session struct {
	Client  *http.Client
	Header  http.Header
	Timeout time.Duration
}

// NewSession returns a session over Client with browser headers.
func NewSession(timeout time.Duration) *Session {
	return &Session{
		Client:  Client,
		Header:  BrowserHeaders(),
		Timeout: timeout,
	}
}

// With returns a copy of the session with extra headers set.
func (s *Session) With(header map[string]string) *Session {
	clone := *s
	clone.Header = s.Header.Clone()
	for k, v := range header {
		clone.Header.Set(k, v)
	}
	return &clone
}

// Do sends a request with the session headers. The caller closes the body.
// The timeout applies to the whole exchange including reading the body,
// so cancel must be called once the body has been consumed.
func (s *Session) Do(ctx context.Context, method, url string, timeout time.Duration) (resp *http.Response, cancel context.CancelFunc, err error) {
	if timeout <= 0 {
		timeout = s.Timeout
	}

	cancel = func() {}
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	req.Header = s.Header.Clone()

	resp, err = s.Client.Do(req)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	return resp, cancel, nil
}

// Fetch GETs url and returns the body. Anything but 200 is a *StatusError.
func (s *Session) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, cancel, err := s.Do(ctx, http.MethodGet, url, 0)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

// Probe sends a HEAD request following redirects and reports whether the answer was 200.
func (s *Session) Probe(ctx context.Context, url string, timeout time.Duration) bool {
	resp, cancel, err := s.Do(ctx, http.MethodHead, url, timeout)
	if err != nil {
		return false
	}
	defer cancel()
	_ = resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
