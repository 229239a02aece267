package schema

import "strconv"

// evaluateOneOf implements "oneOf": exactly one listed schema must
// match. Zero matches reports every branch's failures; two or more
// matches reports the matching indexes.
func evaluateOneOf(obj *OrderedObject, instance *JSONValue, instPtr Pointer) *Violation {
	ov, ok := obj.Get("oneOf")
	if !ok || !ov.IsArray() {
		return nil
	}
	sub := NewErrorBag()
	var matched []string
	for i, s := range ov.Items() {
		b := validateSchemaBag(s, instance, instPtr)
		if b.IsValid() {
			matched = append(matched, strconv.Itoa(i))
		} else {
			sub.Merge(b)
		}
	}
	switch len(matched) {
	case 1:
		return nil
	case 0:
		v := NewViolation("oneOf", "one_of_no_match", instPtr.String(), "Value does not match any schema in oneOf", nil)
		v.SubErrors = sub
		return v
	default:
		return NewViolation("oneOf", "one_of_multiple_matches", instPtr.String(), "Value matches more than one schema in oneOf: {matches}", map[string]any{"matches": matched})
	}
}
