package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSameDocumentPointerRef(t *testing.T) {
	doc, err := Parse([]byte(`{
		"properties": {
			"a": {"$ref": "#/definitions/x"},
			"b": {"$ref": "#/definitions/x"}
		},
		"definitions": {"x": {"type": "string"}}
	}`))
	require.NoError(t, err)

	resolved, err := Resolve(doc, ResolveOptions{})
	require.NoError(t, err)

	a, err := ParsePointer("/properties/a").Follow(resolved)
	require.NoError(t, err)
	assert.Equal(t, "string", mustGet(t, a, "type").String())
}

func TestResolvePreservesReferenceSharingForCycles(t *testing.T) {
	doc, err := Parse([]byte(`{
		"properties": {
			"a": {"$ref": "#/properties/b"},
			"b": {"$ref": "#/properties/a"}
		}
	}`))
	require.NoError(t, err)

	resolved, err := Resolve(doc, ResolveOptions{})
	require.NoError(t, err, "cyclic same-document refs must terminate, not loop forever")

	a, err := ParsePointer("/properties/a").Follow(resolved)
	require.NoError(t, err)
	b, err := ParsePointer("/properties/b").Follow(resolved)
	require.NoError(t, err)
	assert.Same(t, a.Object(), b.Object(), "both ends of the cycle share one object")
}

func TestResolveInlineIDShortcut(t *testing.T) {
	doc, err := Parse([]byte(`{
		"properties": {
			"a": {"$ref": "widget"},
			"widget": {"id": "widget", "type": "string"}
		}
	}`))
	require.NoError(t, err)

	resolved, err := Resolve(doc, ResolveOptions{})
	require.NoError(t, err)

	a, err := ParsePointer("/properties/a").Follow(resolved)
	require.NoError(t, err)
	assert.Equal(t, "string", mustGet(t, a, "type").String())
}

func TestResolveRefNotASchemaError(t *testing.T) {
	doc, err := Parse([]byte(`{
		"properties": {"a": {"$ref": "#/definitions/x"}},
		"definitions": {"x": "not-an-object"}
	}`))
	require.NoError(t, err)

	_, err = Resolve(doc, ResolveOptions{})
	require.Error(t, err)
	assert.IsType(t, &RefNotASchemaError{}, err)
}

func TestResolveRemoteRefRequiresDownload(t *testing.T) {
	doc, err := Parse([]byte(`{"$ref": "http://example.com/other.json"}`))
	require.NoError(t, err)

	_, err = Resolve(doc, ResolveOptions{Download: false})
	require.Error(t, err)
	assert.IsType(t, &FetchError{}, err)
}

func TestResolveIdempotentOnAlreadyResolvedDocument(t *testing.T) {
	doc, err := Parse([]byte(`{
		"properties": {"a": {"$ref": "#/definitions/x"}},
		"definitions": {"x": {"type": "string"}}
	}`))
	require.NoError(t, err)

	first, err := Resolve(doc, ResolveOptions{})
	require.NoError(t, err)

	second, err := Resolve(first, ResolveOptions{})
	require.NoError(t, err)

	a, err := ParsePointer("/properties/a").Follow(second)
	require.NoError(t, err)
	assert.Equal(t, "string", mustGet(t, a, "type").String())
}

func mustGet(t *testing.T, v *JSONValue, key string) *JSONValue {
	t.Helper()
	require.True(t, v.IsObject())
	val, ok := v.Object().Get(key)
	require.True(t, ok, "missing key %q", key)
	return val
}
