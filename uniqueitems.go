package schema

// evaluateUniqueItems implements "uniqueItems": when true, no two
// elements may be structurally equal. O(n^2) via JSONValue.Equal, which
// is adequate for the instance sizes this validator targets.
func evaluateUniqueItems(obj *OrderedObject, instance *JSONValue) *Violation {
	uv, ok := obj.Get("uniqueItems")
	if !ok || !uv.IsBool() || !uv.Bool() {
		return nil
	}
	items := instance.Items()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Equal(items[j]) {
				return NewViolation("uniqueItems", "unique_items_mismatch", "", "Array items are not unique", nil)
			}
		}
	}
	return nil
}
