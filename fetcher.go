package schema

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Fetcher is the abstracted collaborator for the two operations that may
// block: fetching a remote HTTP document or reading a local file. A
// single interface keeps the resolver from ever touching io directly --
// it always gets back a parsed *JSONValue.
type Fetcher interface {
	Get(ctx context.Context, uri string) (*JSONValue, error)
}

// MultiFetcher dispatches to a per-scheme Fetcher.
type MultiFetcher struct {
	byScheme map[string]Fetcher
}

// NewMultiFetcher returns a MultiFetcher preloaded with the default file
// and http(s) fetchers.
func NewMultiFetcher() *MultiFetcher {
	m := &MultiFetcher{byScheme: make(map[string]Fetcher)}
	m.Register("file", &FileFetcher{})
	httpFetcher := NewHTTPFetcher(10 * time.Second)
	m.Register("http", httpFetcher)
	m.Register("https", httpFetcher)
	return m
}

// Register installs fetcher for scheme, replacing any previous
// registration. Callers may use this to inject offline stubs for
// testing.
func (m *MultiFetcher) Register(scheme string, fetcher Fetcher) {
	m.byScheme[scheme] = fetcher
}

func (m *MultiFetcher) Get(ctx context.Context, uri string) (*JSONValue, error) {
	scheme := getURLScheme(uri)
	f, ok := m.byScheme[scheme]
	if !ok {
		return nil, &UnsupportedSchemeError{Scheme: scheme, Ref: uri}
	}
	return f.Get(ctx, uri)
}

// FileFetcher reads file:// schema documents from the local filesystem.
// No timeout applies to file reads.
type FileFetcher struct{}

func (f *FileFetcher) Get(_ context.Context, uri string) (*JSONValue, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	path := u.Path
	if u.Opaque != "" {
		path = u.Opaque
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	v, err := Parse(data)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	return v, nil
}

// HTTPFetcher fetches http(s):// schema documents. A per-request timeout
// is the caller's responsibility; Timeout configures it on the
// underlying http.Client.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher whose client enforces timeout on
// every request.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Get(ctx context.Context, uri string) (*JSONValue, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URI: uri, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	v, err := Parse(data)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	return v, nil
}
