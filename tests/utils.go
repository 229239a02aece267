// Package tests is a black-box harness driving draft4schema through its
// public API only, never its unexported internals.
package tests

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/goccy/go-json"

	schema "github.com/kschaper/draft4schema"
)

// mustParse validates src is well-formed JSON (via goccy/go-json) before
// decoding it into a JSONValue, so a malformed fixture fails with a clear
// message rather than a confusing downstream error.
func mustParse(t *testing.T, src string) *schema.JSONValue {
	t.Helper()
	var generic interface{}
	if err := json.Unmarshal([]byte(src), &generic); err != nil {
		t.Fatalf("invalid test fixture JSON: %v", err)
	}
	v, err := schema.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return v
}

// remoteFileURI returns a file:// URI for a fixture under testdata/remotes,
// resolved relative to this source file so it works regardless of the
// test binary's working directory.
func remoteFileURI(name string) string {
	_, thisFile, _, _ := runtime.Caller(0)
	dir := filepath.Dir(thisFile)
	abs := filepath.Join(dir, "testdata", "remotes", name)
	return "file://" + filepath.ToSlash(abs)
}

// resolveAndValidate is the common end-to-end path every scenario test
// drives: parse the schema, resolve it (allowing local file:// fetches),
// parse the instance, validate.
func resolveAndValidate(t *testing.T, schemaSrc, instanceSrc string) schema.ErrorBag {
	t.Helper()
	s := mustParse(t, schemaSrc)
	resolved, err := schema.Resolve(s, schema.ResolveOptions{Download: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	instance := mustParse(t, instanceSrc)
	return schema.Validate(instance, resolved)
}
