package schema

// evaluateArrayContainer implements the "items"/"additionalItems"
// container pass: if items is a schema, every element must match it
// (additionalItems is then irrelevant); if items is a list (tuple
// form), element i must match items[i], and elements beyond the list
// are governed by additionalItems (forbidden, schema, or
// unconstrained). Writes directly into bag.
func evaluateArrayContainer(obj *OrderedObject, instance *JSONValue, instPtr Pointer, bag ErrorBag) {
	itemsVal, hasItems := obj.Get("items")
	if !hasItems {
		return
	}
	addlVal, hasAddl := obj.Get("additionalItems")
	items := instance.Items()
	loc := instPtr.String()

	if itemsVal.IsObject() {
		for i, it := range items {
			childPtr := instPtr.AppendIndex(i)
			subBag := validateSchemaBag(itemsVal, it, childPtr)
			if !subBag.IsValid() {
				v := NewViolation("items", "item_mismatch", loc, "Item at index {index} does not match its schema", map[string]any{"index": i})
				v.SubErrors = subBag
				bag.Add(loc, v)
			}
		}
		return
	}

	if !itemsVal.IsArray() {
		return
	}
	tuple := itemsVal.Items()
	limit := len(items)
	if limit > len(tuple) {
		limit = len(tuple)
	}
	for i := 0; i < limit; i++ {
		childPtr := instPtr.AppendIndex(i)
		subBag := validateSchemaBag(tuple[i], items[i], childPtr)
		if !subBag.IsValid() {
			v := NewViolation("items", "item_mismatch", loc, "Item at index {index} does not match its schema", map[string]any{"index": i})
			v.SubErrors = subBag
			bag.Add(loc, v)
		}
	}

	if len(items) <= len(tuple) {
		return
	}
	switch {
	case hasAddl && addlVal.IsBool() && !addlVal.Bool():
		bag.Add(loc, NewViolation("additionalItems", "additional_items_forbidden", loc, "Array has more items than the schema allows", nil))
	case hasAddl && addlVal.IsObject():
		for i := len(tuple); i < len(items); i++ {
			childPtr := instPtr.AppendIndex(i)
			subBag := validateSchemaBag(addlVal, items[i], childPtr)
			if !subBag.IsValid() {
				v := NewViolation("additionalItems", "item_mismatch", loc, "Item at index {index} does not match its schema", map[string]any{"index": i})
				v.SubErrors = subBag
				bag.Add(loc, v)
			}
		}
	}
}
