package schema

// evaluateAnyOf implements "anyOf": the instance must validate against
// at least one listed schema; if none pass, every branch's failures are
// reported as SubErrors.
func evaluateAnyOf(obj *OrderedObject, instance *JSONValue, instPtr Pointer) *Violation {
	av, ok := obj.Get("anyOf")
	if !ok || !av.IsArray() {
		return nil
	}
	sub := NewErrorBag()
	for _, s := range av.Items() {
		b := validateSchemaBag(s, instance, instPtr)
		if b.IsValid() {
			return nil
		}
		sub.Merge(b)
	}
	v := NewViolation("anyOf", "any_of_mismatch", instPtr.String(), "Value does not match any schema in anyOf", nil)
	v.SubErrors = sub
	return v
}
