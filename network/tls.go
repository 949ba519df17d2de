package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// BrowserTransport sends requests with a Chrome 120 TLS ClientHello.
// Some sites (WordPress hosts behind Cloudflare in particular) answer 403
// to the default Go fingerprint.
//
// HTTP/2 is tried first. When the h2 round trip fails before a response
// arrives, the request is replayed over HTTP/1.1 with ALPN pinned to http/1.1.
type BrowserTransport struct {
	h2Once sync.Once
	h2     *http2.Transport
	h1     *http.Transport
}

// NewBrowserTransport returns a ready transport.
func NewBrowserTransport() *BrowserTransport {
	return &BrowserTransport{
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialChrome(ctx, network, addr, []string{"http/1.1"})
			},
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

func (t *BrowserTransport) http2() *http2.Transport {
	t.h2Once.Do(func() {
		t.h2 = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialChrome(ctx, network, addr, nil)
			},
		}
	})
	return t.h2
}

// RoundTrip implements http.RoundTripper.
func (t *BrowserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.http2().RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	if req.Body != nil && req.GetBody == nil {
		return nil, err
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		if retry.Body, err = req.GetBody(); err != nil {
			return nil, err
		}
	}

	return t.h1.RoundTrip(retry)
}

// BrowserClient is the shared client over BrowserTransport.
var BrowserClient = &http.Client{
	Transport: NewBrowserTransport(),
}

func dialChrome(ctx context.Context, network, addr string, alpn []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	config := &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}
	if alpn != nil {
		config.NextProtos = alpn
	}

	tlsConn := utls.UClient(conn, config, utls.HelloChrome_120)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake with %s: %w", host, err)
	}

	return tlsConn, nil
}
