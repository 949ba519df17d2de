// Package network provides the HTTP clients and browser-like sessions used to reach program sites.
package network

import (
	"net/http"
	"time"
)

// Client is shared by every session that does not need a browser TLS fingerprint.
// Timeouts are applied per request through the context, so the client itself has none.
var Client = &http.Client{
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
