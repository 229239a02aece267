package schema

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-json"
)

// Kind identifies which JSON type a JSONValue holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// JSONValue is an immutable tagged representation of an arbitrary JSON
// document. Exactly one of the payload fields is meaningful, selected by
// Kind. Numbers carry both the parsed float64 and a flag recording whether
// the literal had a fractional part or exponent, so that "1" and "1.0" can
// be told apart for "type":"integer" while still comparing equal for enum
// and const purposes.
type JSONValue struct {
	Kind Kind

	boolVal   bool
	numVal    float64
	isInteger bool
	strVal    string
	arrVal    []*JSONValue
	objVal    *OrderedObject
}

// NewNull returns the JSON null value.
func NewNull() *JSONValue { return &JSONValue{Kind: KindNull} }

// NewBool wraps a Go bool.
func NewBool(b bool) *JSONValue { return &JSONValue{Kind: KindBool, boolVal: b} }

// NewString wraps a Go string.
func NewString(s string) *JSONValue { return &JSONValue{Kind: KindString, strVal: s} }

// NewInteger wraps an integral number.
func NewInteger(n int) *JSONValue {
	return &JSONValue{Kind: KindNumber, numVal: float64(n), isInteger: true}
}

// NewFloat wraps a float64. A whole value such as 1.0 is flagged as an
// integer, unlike a parsed JSON literal "1.0".
func NewFloat(n float64) *JSONValue {
	return &JSONValue{Kind: KindNumber, numVal: n, isInteger: isWholeNumber(n)}
}

// NewArray wraps a slice of values, preserving order.
func NewArray(items []*JSONValue) *JSONValue {
	return &JSONValue{Kind: KindArray, arrVal: items}
}

// NewObject wraps an OrderedObject.
func NewObject(obj *OrderedObject) *JSONValue {
	if obj == nil {
		obj = NewOrderedObject()
	}
	return &JSONValue{Kind: KindObject, objVal: obj}
}

func isWholeNumber(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// IsNull, IsBool, ... are the usual kind predicates.
func (v *JSONValue) IsNull() bool   { return v == nil || v.Kind == KindNull }
func (v *JSONValue) IsBool() bool   { return v != nil && v.Kind == KindBool }
func (v *JSONValue) IsNumber() bool { return v != nil && v.Kind == KindNumber }
func (v *JSONValue) IsString() bool { return v != nil && v.Kind == KindString }
func (v *JSONValue) IsArray() bool  { return v != nil && v.Kind == KindArray }
func (v *JSONValue) IsObject() bool { return v != nil && v.Kind == KindObject }

// IsInteger reports whether a number instance is flagged as an integer:
// for parsed JSON, a literal with no fraction or exponent ("1", not
// "1.0" or "1e0"). Booleans are never integers or numbers.
func (v *JSONValue) IsInteger() bool { return v.IsNumber() && v.isInteger }

func (v *JSONValue) Bool() bool               { return v.boolVal }
func (v *JSONValue) Number() float64          { return v.numVal }
func (v *JSONValue) String() string           { return v.strVal }
func (v *JSONValue) Items() []*JSONValue      { return v.arrVal }
func (v *JSONValue) Object() *OrderedObject   { return v.objVal }

// TypeName returns the JSON Schema type name ("null", "boolean", "object",
// "array", "number", "string", "integer") for this value's Kind, the way
// the keyword evaluators need it for the "type" keyword.
func (v *JSONValue) TypeName() string {
	if v == nil {
		return "null"
	}
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		if v.isInteger {
			return "integer"
		}
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "null"
}

// Equal implements structural equality: order-independent for objects,
// order-sensitive for arrays, close-float for numbers.
func (v *JSONValue) Equal(other *JSONValue) bool {
	if v == nil || other == nil {
		return v.IsNull() && other.IsNull()
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindNumber:
		return closeFloat(v.numVal, other.numVal)
	case KindString:
		return v.strVal == other.strVal
	case KindArray:
		if len(v.arrVal) != len(other.arrVal) {
			return false
		}
		for i := range v.arrVal {
			if !v.arrVal[i].Equal(other.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.objVal.Len() != other.objVal.Len() {
			return false
		}
		for _, k := range v.objVal.Keys() {
			a, _ := v.objVal.Get(k)
			b, ok := other.objVal.Get(k)
			if !ok || !a.Equal(b) {
				return false
			}
		}
		return true
	}
	return false
}

// closeFloatEpsilon is the tolerance applied to numeric comparisons
// (enum/const equality, multipleOf, maximum/minimum).
const closeFloatEpsilon = 1e-8

func closeFloat(a, b float64) bool {
	return math.Abs(a-b) <= closeFloatEpsilon
}

// OrderedObject is a JSON object that preserves insertion order for
// iteration and marshaling while offering O(1) key lookup. Every JSON
// object -- not just schema property maps -- must preserve insertion
// order, since keyword evaluation order can be observable through
// container-pass violation ordering.
type OrderedObject struct {
	keys   []string
	values map[string]*JSONValue
}

// NewOrderedObject returns an empty OrderedObject.
func NewOrderedObject() *OrderedObject {
	return &OrderedObject{values: make(map[string]*JSONValue)}
}

// Set inserts or overwrites key, appending to the key order only on first
// insertion.
func (o *OrderedObject) Set(key string, val *JSONValue) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = val
}

// Get returns the value for key and whether it was present.
func (o *OrderedObject) Get(key string) (*JSONValue, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Delete removes key from the object.
func (o *OrderedObject) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Clear removes every key. The resolver does not use it: its $ref
// substitution replaces the node's whole object with the target's.
func (o *OrderedObject) Clear() {
	o.keys = nil
	o.values = make(map[string]*JSONValue)
}

// Keys returns the keys in insertion order.
func (o *OrderedObject) Keys() []string { return o.keys }

// Len returns the number of keys.
func (o *OrderedObject) Len() int { return len(o.keys) }

// SortedKeys returns a copy of Keys sorted lexically, useful for stable
// iteration in tests and debug output.
func (o *OrderedObject) SortedKeys() []string {
	out := append([]string(nil), o.keys...)
	sort.Strings(out)
	return out
}

// Parse decodes JSON bytes into a JSONValue tree using goccy/go-json's
// token-level Decoder. Decoding via tokens rather than into
// map[string]any is what lets objects preserve insertion order, which a
// plain map cannot offer.
func Parse(data []byte) (*JSONValue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, &SchemaParseError{Err: err}
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*JSONValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*JSONValue, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewOrderedObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("schema: expected object key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return NewObject(obj), nil
		case '[':
			var items []*JSONValue
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return NewArray(items), nil
		}
		return nil, fmt.Errorf("schema: unexpected delimiter %v", t)
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		lit := t.String()
		hasFraction := bytes.ContainsAny([]byte(lit), ".eE")
		return &JSONValue{Kind: KindNumber, numVal: f, isInteger: !hasFraction && isWholeNumber(f)}, nil
	case string:
		return NewString(t), nil
	}
	return nil, fmt.Errorf("schema: unsupported token %T", tok)
}

// MarshalJSON renders the value back to canonical JSON via goccy/go-json.
func (v *JSONValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toPlain())
}

// toPlain converts back to plain Go values (map[string]any loses order, so
// this is only used for final marshaling, never for internal comparisons).
func (v *JSONValue) toPlain() interface{} {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.boolVal
	case KindNumber:
		return v.numVal
	case KindString:
		return v.strVal
	case KindArray:
		out := make([]interface{}, len(v.arrVal))
		for i, it := range v.arrVal {
			out[i] = it.toPlain()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, v.objVal.Len())
		for _, k := range v.objVal.Keys() {
			val, _ := v.objVal.Get(k)
			out[k] = val.toPlain()
		}
		return out
	}
	return nil
}
