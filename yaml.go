package schema

import "github.com/goccy/go-yaml"

// ParseYAML decodes YAML bytes into a JSONValue tree via goccy/go-yaml.
// YAML has no native ordered-map type, so this first decodes through
// yaml.MapSlice (order-preserving) and converts that into an
// OrderedObject, rather than round-tripping through map[string]any and
// losing key order the way a plain yaml.Unmarshal into interface{}
// would.
func ParseYAML(data []byte) (*JSONValue, error) {
	var raw yaml.MapSlice
	if err := yaml.Unmarshal(data, &raw); err == nil {
		return mapSliceToValue(raw), nil
	}

	var generic interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, &SchemaParseError{Err: err}
	}
	return yamlValueToJSON(generic), nil
}

func mapSliceToValue(raw yaml.MapSlice) *JSONValue {
	obj := NewOrderedObject()
	for _, item := range raw {
		key, ok := item.Key.(string)
		if !ok {
			continue
		}
		obj.Set(key, yamlValueToJSON(item.Value))
	}
	return NewObject(obj)
}

func yamlValueToJSON(v interface{}) *JSONValue {
	switch t := v.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(t)
	case int:
		return NewInteger(t)
	case int64:
		return NewInteger(int(t))
	case float64:
		return NewFloat(t)
	case string:
		return NewString(t)
	case yaml.MapSlice:
		return mapSliceToValue(t)
	case map[string]interface{}:
		obj := NewOrderedObject()
		for k, val := range t {
			obj.Set(k, yamlValueToJSON(val))
		}
		return NewObject(obj)
	case []interface{}:
		items := make([]*JSONValue, len(t))
		for i, it := range t {
			items[i] = yamlValueToJSON(it)
		}
		return NewArray(items)
	default:
		return NewNull()
	}
}
