package schema

// Validate evaluates schema's keywords against instance and returns the
// resulting ErrorBag, keyed by location
// within the instance (not within the schema). An empty bag means valid.
//
// schema must already be resolved (Resolve called, no reachable $ref
// remaining) -- Validate does not fetch or follow references itself.
func Validate(instance, schema *JSONValue) ErrorBag {
	bag := NewErrorBag()
	validateAt(instance, schema, RootPointer(), bag)
	return bag
}

// validateSchemaBag runs Validate's dispatch for a nested subschema
// evaluation (allOf/anyOf/oneOf/not, dependency schemas, container
// passes) at instPtr, returning a fresh bag the caller merges or embeds
// as SubErrors. Recursion terminates because it is bounded by the finite
// instance tree, regardless of $ref cycles left in the schema graph.
func validateSchemaBag(schema, instance *JSONValue, instPtr Pointer) ErrorBag {
	bag := NewErrorBag()
	validateAt(instance, schema, instPtr, bag)
	return bag
}

// validateAt evaluates every keyword present in schema against instance,
// in a fixed logical order: type-independent keywords first
// (type/enum/allOf/anyOf/oneOf/not), then the keywords specific to
// instance's own JSON type. Unknown keywords -- and a dangling $ref that
// a successful resolve leaves behind in a $ref cycle -- are ignored
// silently, since this dispatcher only recognizes the keywords below.
func validateAt(instance, schema *JSONValue, instPtr Pointer, bag ErrorBag) {
	if !schema.IsObject() {
		return
	}
	obj := schema.Object()

	add := func(v *Violation) {
		if v != nil {
			bag.Add(instPtr.String(), v)
		}
	}

	add(evaluateType(obj, instance))
	add(evaluateEnum(obj, instance))
	add(evaluateAllOf(obj, instance, instPtr))
	add(evaluateAnyOf(obj, instance, instPtr))
	add(evaluateOneOf(obj, instance, instPtr))
	add(evaluateNot(obj, instance, instPtr))

	switch {
	case instance.IsObject():
		add(evaluateMaxProperties(obj, instance))
		add(evaluateMinProperties(obj, instance))
		add(evaluateRequired(obj, instance))
		evaluateDependencies(obj, instance, instPtr, bag)
		evaluateObjectContainer(obj, instance, instPtr, bag)
	case instance.IsArray():
		evaluateArrayContainer(obj, instance, instPtr, bag)
		add(evaluateUniqueItems(obj, instance))
		add(evaluateMinItems(obj, instance))
		add(evaluateMaxItems(obj, instance))
	case instance.IsString():
		add(evaluateMaxLength(obj, instance))
		add(evaluateMinLength(obj, instance))
		add(evaluatePattern(obj, instance))
		add(evaluateFormat(obj, instance))
	case instance.IsNumber():
		add(evaluateMultipleOf(obj, instance))
		add(evaluateMinimum(obj, instance))
		add(evaluateMaximum(obj, instance))
	}
}
