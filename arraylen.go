package schema

// evaluateMinItems/evaluateMaxItems implement "minItems"/"maxItems":
// bounds on array length.
func evaluateMaxItems(obj *OrderedObject, instance *JSONValue) *Violation {
	mv, ok := obj.Get("maxItems")
	if !ok || !mv.IsNumber() {
		return nil
	}
	limit := int(mv.Number())
	if len(instance.Items()) <= limit {
		return nil
	}
	return NewViolation("maxItems", "max_items_mismatch", "", "Array has more than {maxItems} items", map[string]any{"maxItems": limit})
}

func evaluateMinItems(obj *OrderedObject, instance *JSONValue) *Violation {
	mv, ok := obj.Get("minItems")
	if !ok || !mv.IsNumber() {
		return nil
	}
	limit := int(mv.Number())
	if len(instance.Items()) >= limit {
		return nil
	}
	return NewViolation("minItems", "min_items_mismatch", "", "Array has fewer than {minItems} items", map[string]any{"minItems": limit})
}
