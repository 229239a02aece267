package schema

import "strconv"

// evaluateAllOf implements "allOf": the instance must validate against
// every listed schema; failures from every branch are unioned into
// SubErrors.
func evaluateAllOf(obj *OrderedObject, instance *JSONValue, instPtr Pointer) *Violation {
	av, ok := obj.Get("allOf")
	if !ok || !av.IsArray() {
		return nil
	}
	sub := NewErrorBag()
	var failed []string
	for i, s := range av.Items() {
		b := validateSchemaBag(s, instance, instPtr)
		if !b.IsValid() {
			sub.Merge(b)
			failed = append(failed, strconv.Itoa(i))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	v := NewViolation("allOf", "all_of_mismatch", instPtr.String(), "Value does not match all schemas in allOf", map[string]any{"indexes": failed})
	v.SubErrors = sub
	return v
}
