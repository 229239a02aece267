package schema

// evaluateMaxLength/evaluateMinLength implement "maxLength"/"minLength":
// bounds on the Unicode code-point count, not the byte length. instance
// .String() is already a decoded Go string, so counting runes is
// equivalent to counting code points without a separate utf8 pass.
func evaluateMaxLength(obj *OrderedObject, instance *JSONValue) *Violation {
	mv, ok := obj.Get("maxLength")
	if !ok || !mv.IsNumber() {
		return nil
	}
	maxLen := int(mv.Number())
	n := len([]rune(instance.String()))
	if n <= maxLen {
		return nil
	}
	return NewViolation("maxLength", "max_length_mismatch", "", "String is longer than {maxLength} characters", map[string]any{"maxLength": maxLen})
}

func evaluateMinLength(obj *OrderedObject, instance *JSONValue) *Violation {
	mv, ok := obj.Get("minLength")
	if !ok || !mv.IsNumber() {
		return nil
	}
	minLen := int(mv.Number())
	n := len([]rune(instance.String()))
	if n >= minLen {
		return nil
	}
	return NewViolation("minLength", "min_length_mismatch", "", "String is shorter than {minLength} characters", map[string]any{"minLength": minLen})
}
