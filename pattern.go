package schema

import "regexp"

// evaluatePattern implements "pattern": a partial (not anchored) regex
// match. Draft-4 assumes ECMA-262 regex while Go's regexp is RE2; the
// divergence that matters in practice is lookbehind and backreferences,
// which RE2 does not support and ECMA-262 does. ValidateSchemaShape does
// not check patterns; a pattern Go's regexp cannot compile is treated as
// a no-op here, so the keyword passes.
func evaluatePattern(obj *OrderedObject, instance *JSONValue) *Violation {
	pv, ok := obj.Get("pattern")
	if !ok || !pv.IsString() {
		return nil
	}
	re, err := regexp.Compile(pv.String())
	if err != nil {
		return nil
	}
	if re.MatchString(instance.String()) {
		return nil
	}
	return NewViolation("pattern", "pattern_mismatch", "", "String does not match pattern {pattern}", map[string]any{"pattern": pv.String()})
}
