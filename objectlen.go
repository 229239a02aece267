package schema

// evaluateMaxProperties/evaluateMinProperties implement
// "maxProperties"/"minProperties": bounds on the instance's own key
// count.
func evaluateMaxProperties(obj *OrderedObject, instance *JSONValue) *Violation {
	mv, ok := obj.Get("maxProperties")
	if !ok || !mv.IsNumber() {
		return nil
	}
	limit := int(mv.Number())
	if instance.Object().Len() <= limit {
		return nil
	}
	return NewViolation("maxProperties", "max_properties_mismatch", "", "Object has more than {maxProperties} properties", map[string]any{"maxProperties": limit})
}

func evaluateMinProperties(obj *OrderedObject, instance *JSONValue) *Violation {
	mv, ok := obj.Get("minProperties")
	if !ok || !mv.IsNumber() {
		return nil
	}
	limit := int(mv.Number())
	if instance.Object().Len() >= limit {
		return nil
	}
	return NewViolation("minProperties", "min_properties_mismatch", "", "Object has fewer than {minProperties} properties", map[string]any{"minProperties": limit})
}
