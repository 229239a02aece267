package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{name: "root", wire: ""},
		{name: "single token", wire: "/properties"},
		{name: "nested", wire: "/properties/name/type"},
		{name: "escaped tilde", wire: "/a~0b"},
		{name: "escaped slash", wire: "/a~1b"},
		{name: "array index", wire: "/items/0/type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsePointer(tc.wire)
			assert.Equal(t, tc.wire, p.String())
		})
	}
}

func TestPointerEscapingTokens(t *testing.T) {
	p := ParsePointer("/a~0b/c~1d")
	assert.Equal(t, []string{"a~b", "c/d"}, p.Tokens())
}

func TestPointerAppendAndParent(t *testing.T) {
	root := RootPointer()
	child := root.Append("properties").Append("name")
	assert.Equal(t, "/properties/name", child.String())

	parent, ok := child.Parent()
	require.True(t, ok)
	assert.Equal(t, "/properties", parent.String())

	_, ok = root.Parent()
	assert.False(t, ok, "root has no parent")
}

func TestPointerIsChildOf(t *testing.T) {
	parent := ParsePointer("/properties")
	child := ParsePointer("/properties/name")
	other := ParsePointer("/items")

	assert.True(t, child.IsChildOf(parent))
	assert.True(t, parent.IsParentOf(child))
	assert.False(t, other.IsChildOf(parent))
	assert.False(t, parent.IsChildOf(parent), "a pointer is not a strict child of itself")
}

func TestPointerFollow(t *testing.T) {
	doc, err := Parse([]byte(`{"properties":{"name":{"type":"string"}},"items":[1,2,3]}`))
	require.NoError(t, err)

	v, err := ParsePointer("/properties/name/type").Follow(doc)
	require.NoError(t, err)
	assert.Equal(t, "string", v.String())

	v, err = ParsePointer("/items/1").Follow(doc)
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.Number())

	_, err = ParsePointer("/properties/missing").Follow(doc)
	assert.Error(t, err)

	_, err = ParsePointer("/items/99").Follow(doc)
	assert.Error(t, err)
}

func TestParseArrayIndexRejectsLeadingZero(t *testing.T) {
	_, ok := parseArrayIndex("01")
	assert.False(t, ok)

	idx, ok := parseArrayIndex("0")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
