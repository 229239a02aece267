package schema

import "fmt"

// ValidateSchemaShape walks root and checks the structural constraints a
// SchemaParseError covers (e.g. "required is not an array of strings")
// before resolution or validation runs. It is a syntactic pre-check, not
// a semantic one: it does not know what a keyword *means*, only the JSON
// shape Draft-4 requires it to have (multipleOf > 0, required: array of
// strings, type: string or array of strings, allOf/anyOf/oneOf:
// non-empty array of schemas).
func ValidateSchemaShape(v *JSONValue) error {
	return checkSchemaShape(v, RootPointer())
}

func checkSchemaShape(v *JSONValue, ptr Pointer) error {
	if !v.IsObject() {
		return nil // boolean/other top-level forms carry no keywords to shape-check
	}
	obj := v.Object()

	if mv, ok := obj.Get("multipleOf"); ok {
		if !mv.IsNumber() || mv.Number() <= 0 {
			return &SchemaParseError{Pointer: ptr.Append("multipleOf").String(), Err: fmt.Errorf("multipleOf must be a number > 0")}
		}
	}
	for _, key := range []string{"exclusiveMaximum", "exclusiveMinimum", "uniqueItems"} {
		if bv, ok := obj.Get(key); ok && !bv.IsBool() {
			return &SchemaParseError{Pointer: ptr.Append(key).String(), Err: fmt.Errorf("%s must be a boolean", key)}
		}
	}
	if rv, ok := obj.Get("required"); ok {
		if !rv.IsArray() {
			return &SchemaParseError{Pointer: ptr.Append("required").String(), Err: fmt.Errorf("required must be an array of strings")}
		}
		for _, nameVal := range rv.Items() {
			if !nameVal.IsString() {
				return &SchemaParseError{Pointer: ptr.Append("required").String(), Err: fmt.Errorf("required must be an array of strings")}
			}
		}
	}
	if tv, ok := obj.Get("type"); ok {
		switch {
		case tv.IsString():
		case tv.IsArray():
			for _, t := range tv.Items() {
				if !t.IsString() {
					return &SchemaParseError{Pointer: ptr.Append("type").String(), Err: fmt.Errorf("type must be a string or array of strings")}
				}
			}
		default:
			return &SchemaParseError{Pointer: ptr.Append("type").String(), Err: fmt.Errorf("type must be a string or array of strings")}
		}
	}
	for _, key := range []string{"allOf", "anyOf", "oneOf"} {
		if av, ok := obj.Get(key); ok {
			if !av.IsArray() || len(av.Items()) == 0 {
				return &SchemaParseError{Pointer: ptr.Append(key).String(), Err: fmt.Errorf("%s must be a non-empty array of schemas", key)}
			}
		}
	}
	if rk, ok := obj.Get("$ref"); ok && !rk.IsString() {
		return &SchemaParseError{Pointer: ptr.Append("$ref").String(), Err: fmt.Errorf("$ref must be a string")}
	}

	if err := descendSchemaShape(obj, ptr); err != nil {
		return err
	}
	return nil
}

// descendSchemaShape recurses into every schema position the keyword
// grammar recognizes, reusing the same classification the walker uses.
func descendSchemaShape(obj *OrderedObject, ptr Pointer) error {
	for _, key := range obj.Keys() {
		child, _ := obj.Get(key)
		switch {
		case key == "items":
			if child.IsArray() {
				for i, sub := range child.Items() {
					if err := checkSchemaShape(sub, ptr.Append("items").AppendIndex(i)); err != nil {
						return err
					}
				}
			} else if child.IsObject() {
				if err := checkSchemaShape(child, ptr.Append("items")); err != nil {
					return err
				}
			}
		case isDirectApplicator(key):
			if child.IsObject() {
				if err := checkSchemaShape(child, ptr.Append(key)); err != nil {
					return err
				}
			}
		case isArrayApplicator(key):
			if child.IsArray() {
				for i, sub := range child.Items() {
					if err := checkSchemaShape(sub, ptr.Append(key).AppendIndex(i)); err != nil {
						return err
					}
				}
			}
		case key == "dependencies":
			if child.IsObject() {
				for _, depKey := range child.Object().Keys() {
					depVal, _ := child.Object().Get(depKey)
					if depVal.IsObject() {
						if err := checkSchemaShape(depVal, ptr.Append("dependencies").Append(depKey)); err != nil {
							return err
						}
					} else if depVal.IsArray() {
						for _, nameVal := range depVal.Items() {
							if !nameVal.IsString() {
								return &SchemaParseError{Pointer: ptr.Append("dependencies").Append(depKey).String(), Err: fmt.Errorf("property dependency list must be strings")}
							}
						}
					}
				}
			}
		case isObjectApplicator(key):
			if child.IsObject() {
				for _, propKey := range child.Object().Keys() {
					propVal, _ := child.Object().Get(propKey)
					if err := checkSchemaShape(propVal, ptr.Append(key).Append(propKey)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
