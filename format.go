package schema

// evaluateFormat implements "format". An unrecognized format name is
// itself reported as a violation rather than silently ignored, and a
// recognized format that the instance fails to match is likewise a
// violation.
func evaluateFormat(obj *OrderedObject, instance *JSONValue) *Violation {
	fv, ok := obj.Get("format")
	if !ok || !fv.IsString() {
		return nil
	}
	name := fv.String()
	checker, known := formatCheckers[name]
	if !known {
		return NewViolation("format", "unknown_format", "", "Unknown format '{format}'", map[string]any{"format": name})
	}
	if checker(instance.String()) {
		return nil
	}
	return NewViolation("format", "format_mismatch", "", "Value does not match format '{format}'", map[string]any{"format": name})
}
