package schema

import "sync"

// ParseSchema wraps the JSON tree as a schema document; it does not
// resolve $refs. It additionally runs ValidateSchemaShape, since the
// plain-*JSONValue schema representation has no type system to catch a
// malformed "required" or "multipleOf" at unmarshal time.
func ParseSchema(data []byte) (*JSONValue, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := ValidateSchemaShape(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Compiler caches resolved schemas by source URI. It holds no format
// state of its own: RegisterFormat writes to the package-level checker
// table, so a registration applies to every Compiler and to Validate.
type Compiler struct {
	mu      sync.RWMutex
	schemas map[string]*JSONValue

	opts ResolveOptions
}

// NewCompiler returns a Compiler using opts for every Compile call.
// There is no toggle for format assertion here: an unknown format name
// is always a hard error, and a known format checker always applies.
func NewCompiler(opts ResolveOptions) *Compiler {
	return &Compiler{schemas: make(map[string]*JSONValue), opts: opts}
}

// RegisterFormat installs or overrides a format checker.
func (c *Compiler) RegisterFormat(name string, check func(string) bool) {
	formatCheckers[name] = check
}

// Compile parses, shape-checks, resolves, and caches the schema at uri.
// A cache hit returns the previously resolved schema unchanged.
func (c *Compiler) Compile(data []byte, uri string) (*JSONValue, error) {
	c.mu.RLock()
	if cached, ok := c.schemas[uri]; ok {
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	v, err := ParseSchema(data)
	if err != nil {
		return nil, err
	}
	resolved, err := Resolve(v, c.opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.schemas[uri] = resolved
	c.mu.Unlock()
	return resolved, nil
}
