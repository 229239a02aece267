package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFragment(t *testing.T) {
	base, frag := SplitFragment("http://example.com/schema.json#/definitions/foo")
	assert.Equal(t, "http://example.com/schema.json", base)
	assert.Equal(t, "/definitions/foo", frag)

	base, frag = SplitFragment("http://example.com/schema.json")
	assert.Equal(t, "http://example.com/schema.json", base)
	assert.Equal(t, "", frag)
}

func TestDefrag(t *testing.T) {
	assert.Equal(t, "http://example.com/schema.json", Defrag("http://example.com/schema.json#/a/b"))
	assert.Equal(t, "http://example.com/schema.json", Defrag("http://example.com/schema.json#"))
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, IsAbsolute("http://example.com/schema.json"))
	assert.True(t, IsAbsolute("https://example.com"))
	assert.False(t, IsAbsolute("/definitions/foo"))
	assert.False(t, IsAbsolute("#/definitions/foo"))
	assert.False(t, IsAbsolute("other.json"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "http://example.com/other.json", Join("http://example.com/schema.json", "other.json"))
	assert.Equal(t, "http://example.com/a/b.json", Join("http://example.com/a/schema.json", "b.json"))
	assert.Equal(t, "http://other.com/x.json", Join("http://example.com/schema.json", "http://other.com/x.json"))
}

func TestJoinDotDotSiblingTrick(t *testing.T) {
	// Mirrors the "../" sibling-normalization used by idAbsoluteURI: joining
	// "../name" against "ancestorBase/" lands on a sibling of ancestorBase.
	got := Join("http://example.com/schemas/parent.json/", "../other")
	assert.Equal(t, "http://example.com/schemas/other", got)
}

func TestNormalizeCaseFolding(t *testing.T) {
	assert.Equal(t, "http://example.com/schema.json", Normalize("HTTP://EXAMPLE.COM/schema.json"))
}
