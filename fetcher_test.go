package schema

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetcherReadsLocalSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "string"}`), 0o644))

	f := &FileFetcher{}
	v, err := f.Get(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.True(t, v.IsObject())
}

func TestFileFetcherMissingFile(t *testing.T) {
	f := &FileFetcher{}
	_, err := f.Get(context.Background(), "file:///no/such/file.json")
	require.Error(t, err)
	assert.IsType(t, &FetchError{}, err)
}

func TestHTTPFetcherFetchesSchema(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type": "number"}`)) //nolint:errcheck
	}))
	defer server.Close()

	f := NewHTTPFetcher(0)
	v, err := f.Get(context.Background(), server.URL)
	require.NoError(t, err)
	tv, ok := v.Object().Get("type")
	require.True(t, ok)
	assert.Equal(t, "number", tv.String())
}

func TestHTTPFetcherNon2xxIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewHTTPFetcher(0)
	_, err := f.Get(context.Background(), server.URL)
	require.Error(t, err)
	assert.IsType(t, &FetchError{}, err)
}

type stubFetcher struct {
	v   *JSONValue
	err error
}

func (s *stubFetcher) Get(_ context.Context, _ string) (*JSONValue, error) {
	return s.v, s.err
}

func TestMultiFetcherDispatchesByScheme(t *testing.T) {
	m := &MultiFetcher{byScheme: make(map[string]Fetcher)}
	schemaVal := NewObject(NewOrderedObject())
	m.Register("custom", &stubFetcher{v: schemaVal})

	v, err := m.Get(context.Background(), "custom://whatever")
	require.NoError(t, err)
	assert.Same(t, schemaVal, v)

	_, err = m.Get(context.Background(), "ftp://unsupported")
	require.Error(t, err)
	assert.IsType(t, &UnsupportedSchemeError{}, err)
}
