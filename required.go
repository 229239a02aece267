package schema

// evaluateRequired implements "required": every listed name must be an
// own key of the instance.
func evaluateRequired(obj *OrderedObject, instance *JSONValue) *Violation {
	rv, ok := obj.Get("required")
	if !ok || !rv.IsArray() {
		return nil
	}
	var missing []string
	for _, nameVal := range rv.Items() {
		if !nameVal.IsString() {
			continue
		}
		name := nameVal.String()
		if _, present := instance.Object().Get(name); !present {
			missing = append(missing, name)
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return NewViolation("required", "missing_required_property", "", "Required property {property} is missing", map[string]any{"property": missing[0]})
	default:
		return NewViolation("required", "missing_required_properties", "", "Required properties {properties} are missing", map[string]any{"properties": missing})
	}
}
