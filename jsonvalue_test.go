package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistinguishesIntegerFromNumber(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 1.0, "c": 1.5}`))
	require.NoError(t, err)

	a, _ := v.Object().Get("a")
	b, _ := v.Object().Get("b")
	c, _ := v.Object().Get("c")

	assert.Equal(t, "integer", a.TypeName())
	assert.Equal(t, "integer", b.TypeName(), "1.0 has no fractional part, so it is an integer")
	assert.Equal(t, "number", c.TypeName())
}

func TestOrderedObjectPreservesInsertionOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, v.Object().Keys())
}

func TestEqualObjectsAreOrderIndependent(t *testing.T) {
	a, err := Parse([]byte(`{"x": 1, "y": 2}`))
	require.NoError(t, err)
	b, err := Parse([]byte(`{"y": 2, "x": 1}`))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestEqualArraysAreOrderSensitive(t *testing.T) {
	a, err := Parse([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	b, err := Parse([]byte(`[3, 2, 1]`))
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestEqualNumbersUseCloseFloatTolerance(t *testing.T) {
	a := NewFloat(0.1 + 0.2)
	b := NewFloat(0.3)
	assert.True(t, a.Equal(b))

	c := NewFloat(1.0)
	d := NewFloat(1.001)
	assert.False(t, c.Equal(d))
}

func TestBooleanIsNeverAnInteger(t *testing.T) {
	v := NewBool(true)
	assert.Equal(t, "boolean", v.TypeName())
	assert.False(t, v.IsInteger())
	assert.False(t, v.IsNumber())
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	v, err := Parse([]byte(`{"name": "John", "age": 30, "tags": ["a", "b"]}`))
	require.NoError(t, err)

	data, err := v.MarshalJSON()
	require.NoError(t, err)

	reparsed, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, v.Equal(reparsed))
}

func TestOrderedObjectDeleteAndClear(t *testing.T) {
	obj := NewOrderedObject()
	obj.Set("a", NewInteger(1))
	obj.Set("b", NewInteger(2))
	obj.Delete("a")
	assert.Equal(t, []string{"b"}, obj.Keys())
	assert.Equal(t, 1, obj.Len())

	obj.Clear()
	assert.Equal(t, 0, obj.Len())
	assert.Empty(t, obj.Keys())
}
