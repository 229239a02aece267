package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLPreservesKeyOrder(t *testing.T) {
	v, err := ParseYAML([]byte("z: 1\na: 2\nm: 3\n"))
	require.NoError(t, err)
	require.True(t, v.IsObject())
	assert.Equal(t, []string{"z", "a", "m"}, v.Object().Keys())
}

func TestParseYAMLNestedStructure(t *testing.T) {
	v, err := ParseYAML([]byte(`
type: object
properties:
  name:
    type: string
required:
  - name
`))
	require.NoError(t, err)

	tv, ok := v.Object().Get("type")
	require.True(t, ok)
	assert.Equal(t, "object", tv.String())

	req, ok := v.Object().Get("required")
	require.True(t, ok)
	require.True(t, req.IsArray())
	assert.Equal(t, "name", req.Items()[0].String())
}

func TestParseYAMLEquivalentToJSON(t *testing.T) {
	yamlDoc, err := ParseYAML([]byte("type: string\nminLength: 3\n"))
	require.NoError(t, err)

	jsonDoc, err := Parse([]byte(`{"type": "string", "minLength": 3}`))
	require.NoError(t, err)

	assert.True(t, yamlDoc.Equal(jsonDoc))
}
