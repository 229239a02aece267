package schema

// evaluateNot implements "not": the instance must fail validation against
// the given schema.
func evaluateNot(obj *OrderedObject, instance *JSONValue, instPtr Pointer) *Violation {
	nv, ok := obj.Get("not")
	if !ok || !nv.IsObject() {
		return nil
	}
	if !validateSchemaBag(nv, instance, instPtr).IsValid() {
		return nil
	}
	return NewViolation("not", "not_mismatch", instPtr.String(), "Value should not match the schema given by not", nil)
}
