package schema

// evaluateDependencies implements "dependencies": for each entry present
// as an instance key, an array value lists sibling property names that
// must also be present, while an object value is a whole-instance schema
// the instance must validate against. Unlike the single-violation
// keywords, this writes violations (one per unsatisfied entry) directly
// into bag rather than returning one, since a single dependencies
// keyword can report several independent problems with distinct codes.
func evaluateDependencies(obj *OrderedObject, instance *JSONValue, instPtr Pointer, bag ErrorBag) {
	dv, ok := obj.Get("dependencies")
	if !ok || !dv.IsObject() {
		return
	}
	loc := instPtr.String()
	for _, key := range dv.Object().Keys() {
		if _, present := instance.Object().Get(key); !present {
			continue
		}
		depVal, _ := dv.Object().Get(key)
		switch {
		case depVal.IsArray():
			for _, nameVal := range depVal.Items() {
				if !nameVal.IsString() {
					continue
				}
				name := nameVal.String()
				if _, present := instance.Object().Get(name); !present {
					bag.Add(loc, NewViolation("dependencies", "dependency_missing_property", loc,
						"Property {dependency} requires property {property} to also be present",
						map[string]any{"dependency": key, "property": name}))
				}
			}
		case depVal.IsObject():
			sub := validateSchemaBag(depVal, instance, instPtr)
			if !sub.IsValid() {
				v := NewViolation("dependencies", "dependency_schema_mismatch", loc,
					"Instance does not match the schema required by dependency {dependency}",
					map[string]any{"dependency": key})
				v.SubErrors = sub
				bag.Add(loc, v)
			}
		}
	}
}
