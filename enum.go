package schema

// evaluateEnum implements the "enum" keyword: the instance must be
// structurally equal (close-float for numbers) to one of the listed
// values.
func evaluateEnum(obj *OrderedObject, instance *JSONValue) *Violation {
	enumVal, ok := obj.Get("enum")
	if !ok || !enumVal.IsArray() {
		return nil
	}
	for _, item := range enumVal.Items() {
		if instance.Equal(item) {
			return nil
		}
	}
	return NewViolation("enum", "value_not_in_enum", "", "Value should match one of the values specified by the enum", nil)
}
