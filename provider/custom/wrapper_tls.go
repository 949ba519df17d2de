package custom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/radiodl-cli/radiodl/internal/cache"
	"github.com/radiodl-cli/radiodl/network"
	"github.com/radiodl-cli/radiodl/util"
	lua "github.com/yuin/gopher-lua"
)

const httpTimeout = 30 * time.Second

// tlsClient serves the http_tls module. It presents a Chrome TLS fingerprint.
var tlsClient = network.BrowserClient

// registerTLSClient installs the http_tls global:
//
//	http_tls.get(url [, headers])                  -> body
//	http_tls.request{method, url, headers, body, cache} -> {status, body}
func registerTLSClient(L *lua.LState) {
	mod := L.NewTable()
	L.SetField(mod, "get", L.NewFunction(httpTLSGet))
	L.SetField(mod, "request", L.NewFunction(httpTLSRequest))
	L.SetGlobal("http_tls", mod)
}

func tableToHeaders(tbl *lua.LTable) map[string]string {
	headers := make(map[string]string)
	if tbl == nil {
		return headers
	}
	tbl.ForEach(func(k, v lua.LValue) {
		headers[k.String()] = v.String()
	})
	return headers
}

func stateContext(L *lua.LState) context.Context {
	if ctx := L.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func httpTLSGet(L *lua.LState) int {
	url := L.CheckString(1)
	headers := tableToHeaders(L.OptTable(2, nil))

	body, status, err := doTLSRequest(stateContext(L), http.MethodGet, url, headers, "")
	if err != nil {
		L.RaiseError("http_tls.get failed: %s", err.Error())
		return 0
	}
	if status != http.StatusOK {
		L.RaiseError("http_tls.get %s: status %d", url, status)
		return 0
	}

	L.Push(lua.LString(body))
	return 1
}

type tlsCacheEntry struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func httpTLSRequest(L *lua.LState) int {
	opts := L.CheckTable(1)

	method := getStringField(opts, "method", http.MethodGet)
	url := getStringField(opts, "url", "")
	reqBody := getStringField(opts, "body", "")
	shouldCache := lua.LVAsBool(opts.RawGetString("cache"))

	if url == "" {
		L.RaiseError("http_tls.request: url is required")
		return 0
	}

	var headers map[string]string
	if tbl, ok := opts.RawGetString("headers").(*lua.LTable); ok {
		headers = tableToHeaders(tbl)
	}

	push := func(status int, body string) int {
		result := L.NewTable()
		L.SetField(result, "status", lua.LNumber(status))
		L.SetField(result, "body", lua.LString(body))
		L.Push(result)
		return 1
	}

	cacheKey := cache.Key(url+reqBody, method)
	if shouldCache {
		var entry tlsCacheEntry
		if cache.Read(cacheKey, &entry) {
			return push(entry.Status, entry.Body)
		}
	}

	body, status, err := doTLSRequest(stateContext(L), method, url, headers, reqBody)
	if err != nil {
		L.RaiseError("http_tls.request failed: %s", err.Error())
		return 0
	}

	if shouldCache && status == http.StatusOK {
		_ = cache.Write(cacheKey, tlsCacheEntry{Status: status, Body: body})
	}

	return push(status, body)
}

func getStringField(tbl *lua.LTable, key string, def string) string {
	val := tbl.RawGetString(key)
	if val == lua.LNil {
		return def
	}
	return val.String()
}

// doTLSRequest sends the request with browser headers, overridden by headers.
func doTLSRequest(ctx context.Context, method, rawURL string, headers map[string]string, body string) (string, int, error) {
	ctx, cancel := context.WithTimeout(ctx, httpTimeout)
	defer cancel()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return "", 0, fmt.Errorf("create request: %w", err)
	}

	req.Header = network.BrowserHeaders()
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := tlsClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("request failed: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	return string(respBody), resp.StatusCode, nil
}
