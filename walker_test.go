package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkCollectsIDsAndRefs(t *testing.T) {
	doc, err := Parse([]byte(`{
		"id": "http://example.com/root.json",
		"properties": {
			"a": {"$ref": "other.json#/definitions/x"},
			"b": {
				"id": "sub.json",
				"properties": {
					"c": {"$ref": "#/properties/a"}
				}
			}
		},
		"definitions": {
			"x": {"type": "string"}
		}
	}`))
	require.NoError(t, err)

	ids, refs := Walk(doc, "", "", nil)

	assert.Equal(t, "http://example.com/root.json", ids[""])
	assert.Equal(t, "sub.json", ids["/properties/b"])
	assert.Equal(t, "other.json#/definitions/x", refs["/properties/a"])
	assert.Equal(t, "#/properties/a", refs["/properties/b/properties/c"])
}

func TestWalkSkipsExcludedDataKeys(t *testing.T) {
	doc, err := Parse([]byte(`{
		"enum": [{"id": "not-a-schema-position"}],
		"default": {"id": "also-not-a-schema-position"},
		"type": "string"
	}`))
	require.NoError(t, err)

	ids, _ := Walk(doc, "", "", nil)
	assert.Empty(t, ids, "enum/default subtrees are data, not schema positions")
}

func TestWalkDraft4ItemsPolymorphism(t *testing.T) {
	singleSchema, err := Parse([]byte(`{"items": {"type": "string"}}`))
	require.NoError(t, err)
	ids, _ := Walk(singleSchema, "", "", nil)
	assert.NotContains(t, ids, "/items/0")

	tupleSchema, err := Parse([]byte(`{"items": [{"type": "string"}, {"type": "number"}]}`))
	require.NoError(t, err)
	_, refs := Walk(tupleSchema, "", "", nil)
	assert.NotNil(t, refs) // tuple form descends per-index; just confirm it doesn't panic

	walked := IsSchemaPosition(ParsePointer("/items/0"))
	assert.True(t, walked)
	walked = IsSchemaPosition(ParsePointer("/items"))
	assert.True(t, walked)
}

func TestWalkDependenciesOnlySchemaEntriesAreSchemaPositions(t *testing.T) {
	doc, err := Parse([]byte(`{
		"dependencies": {
			"creditCard": ["billingAddress"],
			"name": {"required": ["firstName"]}
		}
	}`))
	require.NoError(t, err)

	ids, _ := Walk(doc, "", "", nil)
	assert.Empty(t, ids)
	assert.True(t, IsSchemaPosition(ParsePointer("/dependencies/name")))
}

func TestIsSchemaPositionRejectsNonGrammarPaths(t *testing.T) {
	assert.False(t, IsSchemaPosition(ParsePointer("/properties")))
	assert.False(t, IsSchemaPosition(ParsePointer("/allOf")))
	assert.True(t, IsSchemaPosition(ParsePointer("/allOf/0")))
	assert.True(t, IsSchemaPosition(ParsePointer("")))
}
