package schema

import "strings"

// evaluateType implements the "type" keyword: string or array of
// strings, at least one of which must match the instance's type.
// "number" also accepts integral instances; booleans are never integers
// or numbers.
func evaluateType(obj *OrderedObject, instance *JSONValue) *Violation {
	typeVal, ok := obj.Get("type")
	if !ok {
		return nil
	}

	var allowed []string
	switch {
	case typeVal.IsString():
		allowed = []string{typeVal.String()}
	case typeVal.IsArray():
		for _, t := range typeVal.Items() {
			if t.IsString() {
				allowed = append(allowed, t.String())
			}
		}
	default:
		return nil
	}

	instanceType := instance.TypeName()
	for _, t := range allowed {
		if t == instanceType {
			return nil
		}
		if t == "number" && instanceType == "integer" {
			return nil
		}
	}

	return NewViolation("type", "type_mismatch", "", "Value is {received} but should be {expected}", map[string]any{
		"expected": strings.Join(allowed, ", "),
		"received": instanceType,
	})
}
