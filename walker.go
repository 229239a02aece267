package schema

// IDMap maps a schema position's pointer string to its raw "id" keyword
// value.
type IDMap map[string]string

// RefMap maps a schema position's pointer string to its raw "$ref"
// keyword value.
type RefMap map[string]string

// defaultExcludedDataKeys are the keys whose subtrees are data, not schema, and
// so are never descended into by the walker. Configurable via
// ResolveOptions.ExcludedDataKeys; this is the default set.
var defaultExcludedDataKeys = map[string]struct{}{
	"enum":    {},
	"default": {},
}

// schemaApplicatorKeywords are the keywords whose values are themselves
// subschemas or collections of subschemas, i.e. the keys the schema
// position grammar recognizes. direct-valued keywords hold a single
// subschema; array-valued and object-valued keywords hold a list or map
// of subschemas respectively.
var (
	directApplicators = map[string]struct{}{
		"additionalItems":      {},
		"items":                {}, // also handled specially when items is an array; see walk
		"additionalProperties": {},
		"not":                  {},
	}
	arrayApplicators = map[string]struct{}{
		"items": {}, // Draft-4 tuple form: "items" is an array of subschemas
		"allOf": {},
		"anyOf": {},
		"oneOf": {},
	}
	objectApplicators = map[string]struct{}{
		"definitions":       {},
		"properties":        {},
		"patternProperties": {},
		"dependencies":      {}, // only entries whose value is itself a schema; array-valued entries are data
	}
)

// defaultIDKey / defaultRefKey are Draft-4's "id"/"$ref"; ResolveOptions
// may override them.
const (
	defaultIDKey  = "id"
	defaultRefKey = "$ref"
)

// Walk performs a depth-first traversal of doc, producing its id and
// $ref maps. idKey/refKey/excluded let callers match ResolveOptions
// without the walker needing to know about ResolveOptions itself.
func Walk(doc *JSONValue, idKey, refKey string, excluded map[string]struct{}) (IDMap, RefMap) {
	if idKey == "" {
		idKey = defaultIDKey
	}
	if refKey == "" {
		refKey = defaultRefKey
	}
	if excluded == nil {
		excluded = defaultExcludedDataKeys
	}
	w := &walker{ids: IDMap{}, refs: RefMap{}, idKey: idKey, refKey: refKey, excluded: excluded}
	w.walk(doc, RootPointer())
	return w.ids, w.refs
}

type walker struct {
	ids      IDMap
	refs     RefMap
	idKey    string
	refKey   string
	excluded map[string]struct{}
}

// walk records ptr's id/$ref (if any) and descends into every applicator
// keyword slot, skipping data keywords. ptr is always a schema position
// by construction: walk is only ever called at the root or from a slot
// the grammar recognizes.
func (w *walker) walk(v *JSONValue, ptr Pointer) {
	if !v.IsObject() {
		return
	}
	obj := v.Object()

	if idVal, ok := obj.Get(w.idKey); ok && idVal.IsString() && idVal.String() != "" {
		w.ids[ptr.String()] = idVal.String()
	}
	if refVal, ok := obj.Get(w.refKey); ok && refVal.IsString() {
		w.refs[ptr.String()] = refVal.String()
	}

	for _, key := range obj.Keys() {
		if _, skip := w.excluded[key]; skip {
			continue
		}
		child, _ := obj.Get(key)

		switch {
		case key == "items":
			// Draft-4 polymorphism: "items" is either a single schema
			// (direct applicator) or an array of schemas (array
			// applicator). Both are valid schema positions.
			if child.IsArray() {
				for i, sub := range child.Items() {
					w.walk(sub, ptr.Append("items").AppendIndex(i))
				}
			} else if child.IsObject() {
				w.walk(child, ptr.Append("items"))
			}
		case isDirectApplicator(key):
			if child.IsObject() {
				w.walk(child, ptr.Append(key))
			}
		case isArrayApplicator(key):
			if child.IsArray() {
				for i, sub := range child.Items() {
					w.walk(sub, ptr.Append(key).AppendIndex(i))
				}
			}
		case key == "dependencies":
			if child.IsObject() {
				for _, depKey := range child.Object().Keys() {
					depVal, _ := child.Object().Get(depKey)
					// Only schema-valued dependency entries are schema
					// positions; array-valued ("property dependency")
					// entries are data.
					if depVal.IsObject() {
						w.walk(depVal, ptr.Append("dependencies").Append(depKey))
					}
				}
			}
		case isObjectApplicator(key):
			if child.IsObject() {
				for _, propKey := range child.Object().Keys() {
					propVal, _ := child.Object().Get(propKey)
					w.walk(propVal, ptr.Append(key).Append(propKey))
				}
			}
		}
	}
}

func isDirectApplicator(key string) bool {
	_, ok := directApplicators[key]
	return ok && key != "items"
}

func isArrayApplicator(key string) bool {
	_, ok := arrayApplicators[key]
	return ok && key != "items"
}

func isObjectApplicator(key string) bool {
	_, ok := objectApplicators[key]
	return ok
}

// IsSchemaPosition reports whether ptr's token path matches the schema
// position grammar. It is a static check usable by tests independent of
// any particular document, walking the token path itself rather than
// the document.
func IsSchemaPosition(ptr Pointer) bool {
	toks := ptr.Tokens()
	i := 0
	for i < len(toks) {
		tok := toks[i]
		switch tok {
		case "items":
			// "items" is a direct applicator (single schema) or, when
			// followed by an index, an array applicator (tuple form).
			if i+1 < len(toks) {
				if _, ok := parseArrayIndex(toks[i+1]); ok {
					i += 2
					continue
				}
			}
			i++
		case "additionalItems", "additionalProperties", "not":
			i++
		case "allOf", "anyOf", "oneOf":
			if i+1 >= len(toks) {
				return false
			}
			if _, ok := parseArrayIndex(toks[i+1]); !ok {
				return false
			}
			i += 2
		case "definitions", "properties", "patternProperties", "dependencies":
			if i+1 >= len(toks) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}
