package tests

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioIntegerType covers: Schema {"type":"integer"}, 1 valid,
// 1.5 invalid with exactly one violation at the instance root.
func TestScenarioIntegerType(t *testing.T) {
	bag := resolveAndValidate(t, `{"type":"integer"}`, `1`)
	assert.True(t, bag.IsValid())

	bag = resolveAndValidate(t, `{"type":"integer"}`, `1.5`)
	require.False(t, bag.IsValid())
	assert.Len(t, bag, 1)
	assert.Len(t, bag[""], 1)
}

// TestScenarioTupleItemsWithAdditionalItemsForbidden covers: tuple-form
// items with additionalItems:false, where a third element overflows.
func TestScenarioTupleItemsWithAdditionalItemsForbidden(t *testing.T) {
	schemaSrc := `{"items":[{"type":"integer"},{"type":"integer"}],"additionalItems":false}`

	assert.True(t, resolveAndValidate(t, schemaSrc, `[1,2]`).IsValid())
	assert.False(t, resolveAndValidate(t, schemaSrc, `[1,2,3]`).IsValid())
}

// TestScenarioSelfRefWithAdditionalPropertiesFalse covers a recursive
// schema ({"foo": <itself>}) where additionalProperties:false blocks any
// key other than foo at every level of nesting.
func TestScenarioSelfRefWithAdditionalPropertiesFalse(t *testing.T) {
	schemaSrc := `{"properties":{"foo":{"$ref":"#"}},"additionalProperties":false}`

	assert.True(t, resolveAndValidate(t, schemaSrc, `{"foo":{"foo":{}}}`).IsValid())
	assert.False(t, resolveAndValidate(t, schemaSrc, `{"foo":{"bar":false}}`).IsValid())
}

// TestScenarioInlineIDRef covers resolving a $ref by inline id rather
// than by JSON Pointer.
func TestScenarioInlineIDRef(t *testing.T) {
	schemaSrc := `{"definitions":{"a":{"id":"inline_id","type":"integer"}},"$ref":"inline_id"}`

	assert.True(t, resolveAndValidate(t, schemaSrc, `7`).IsValid())
	assert.False(t, resolveAndValidate(t, schemaSrc, `"x"`).IsValid())
}

// TestScenarioExternalFileRef covers resolving a $ref to a file://
// document on disk.
func TestScenarioExternalFileRef(t *testing.T) {
	schemaSrc := fmt.Sprintf(`{"$ref":%q}`, remoteFileURI("integer.json"))

	assert.True(t, resolveAndValidate(t, schemaSrc, `3`).IsValid())
	assert.False(t, resolveAndValidate(t, schemaSrc, `3.5`).IsValid())
}

// TestScenarioOneOfMultipleMatches covers oneOf rejecting an instance
// that satisfies more than one branch.
func TestScenarioOneOfMultipleMatches(t *testing.T) {
	schemaSrc := `{"oneOf":[{"type":"integer"},{"type":"number"}]}`

	bag := resolveAndValidate(t, schemaSrc, `1`)
	require.False(t, bag.IsValid())
	assert.Equal(t, "one_of_multiple_matches", bag[""][0].Code)
}
