package schema

import "regexp"

// evaluateObjectContainer implements the "properties"/"patternProperties"
// /"additionalProperties" container pass as a single unified pass, since
// the three keywords share the same per-key matching logic: for each
// instance key, collect every matching subschema (the properties entry
// if the key matches, plus every patternProperties entry whose regex
// matches); if none matched, additionalProperties governs (schema,
// forbid, or unconstrained). Writes directly into bag since distinct
// keys can each fail independently.
func evaluateObjectContainer(obj *OrderedObject, instance *JSONValue, instPtr Pointer, bag ErrorBag) {
	propsVal, hasProps := obj.Get("properties")
	patPropsVal, hasPat := obj.Get("patternProperties")
	addlVal, hasAddl := obj.Get("additionalProperties")
	if !hasProps && !hasPat && !hasAddl {
		return
	}

	var patRes []*regexp.Regexp
	var patSchemas []*JSONValue
	if hasPat && patPropsVal.IsObject() {
		for _, k := range patPropsVal.Object().Keys() {
			re, err := regexp.Compile(k)
			if err != nil {
				continue
			}
			sv, _ := patPropsVal.Object().Get(k)
			patRes = append(patRes, re)
			patSchemas = append(patSchemas, sv)
		}
	}

	loc := instPtr.String()
	for _, key := range instance.Object().Keys() {
		val, _ := instance.Object().Get(key)
		childPtr := instPtr.Append(key)

		var matched []*JSONValue
		if hasProps && propsVal.IsObject() {
			if sv, ok := propsVal.Object().Get(key); ok {
				matched = append(matched, sv)
			}
		}
		for i, re := range patRes {
			if re.MatchString(key) {
				matched = append(matched, patSchemas[i])
			}
		}

		if len(matched) == 0 && hasAddl {
			switch {
			case addlVal.IsBool() && !addlVal.Bool():
				bag.Add(loc, NewViolation("additionalProperties", "additional_property_forbidden", loc,
					"Additional property {property} is not allowed", map[string]any{"property": key}))
				continue
			case addlVal.IsObject():
				matched = append(matched, addlVal)
			}
		}

		for _, sub := range matched {
			subBag := validateSchemaBag(sub, val, childPtr)
			if !subBag.IsValid() {
				v := NewViolation("properties", "property_mismatch", loc, "Property {property} does not match its schema", map[string]any{"property": key})
				v.SubErrors = subBag
				bag.Add(loc, v)
			}
		}
	}
}
