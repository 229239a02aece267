package schema

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// Pointer is an RFC 6901 JSON Pointer: an ordered sequence of decoded
// string tokens. The empty pointer denotes the document root. Token
// escaping ("~" -> "~0", "/" -> "~1") is delegated to
// github.com/kaptinlin/jsonpointer.
type Pointer struct {
	tokens []string
}

// RootPointer is the empty pointer, denoting the document root.
func RootPointer() Pointer { return Pointer{} }

// ParsePointer parses the wire form of a JSON Pointer ("" or a sequence of
// "/token" segments) into a Pointer.
func ParsePointer(s string) Pointer {
	if s == "" {
		return Pointer{}
	}
	return Pointer{tokens: jsonpointer.Parse(s)}
}

// NewPointer builds a Pointer directly from decoded tokens.
func NewPointer(tokens ...string) Pointer {
	return Pointer{tokens: append([]string(nil), tokens...)}
}

// String renders the pointer back to its RFC 6901 wire form.
func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return jsonpointer.Format(p.tokens...)
}

// Tokens returns the decoded token slice; callers must not mutate it.
func (p Pointer) Tokens() []string { return p.tokens }

// Len returns the number of tokens.
func (p Pointer) Len() int { return len(p.tokens) }

// IsRoot reports whether this is the empty (root) pointer.
func (p Pointer) IsRoot() bool { return len(p.tokens) == 0 }

// Append returns a new Pointer with tok appended.
func (p Pointer) Append(tok string) Pointer {
	out := make([]string, len(p.tokens)+1)
	copy(out, p.tokens)
	out[len(p.tokens)] = tok
	return Pointer{tokens: out}
}

// AppendIndex appends a non-negative array index token.
func (p Pointer) AppendIndex(i int) Pointer {
	return p.Append(strconv.Itoa(i))
}

// Parent returns the pointer with its last token removed, and false if p
// is already the root.
func (p Pointer) Parent() (Pointer, bool) {
	if len(p.tokens) == 0 {
		return Pointer{}, false
	}
	return Pointer{tokens: p.tokens[:len(p.tokens)-1]}, true
}

// IsChildOf reports whether p is a strict descendant of other.
func (p Pointer) IsChildOf(other Pointer) bool {
	if len(p.tokens) <= len(other.tokens) {
		return false
	}
	for i := range other.tokens {
		if p.tokens[i] != other.tokens[i] {
			return false
		}
	}
	return true
}

// IsParentOf reports whether p is a strict ancestor of other.
func (p Pointer) IsParentOf(other Pointer) bool { return other.IsChildOf(p) }

// Follow walks doc according to p's tokens, returning the value at that
// location or an error if a segment cannot be followed.
func (p Pointer) Follow(doc *JSONValue) (*JSONValue, error) {
	cur := doc
	for i, tok := range p.tokens {
		switch {
		case cur.IsObject():
			next, ok := cur.Object().Get(tok)
			if !ok {
				return nil, &RefNotFoundError{Pointer: NewPointer(p.tokens[:i+1]...).String()}
			}
			cur = next
		case cur.IsArray():
			idx, ok := parseArrayIndex(tok)
			if !ok || idx >= len(cur.Items()) {
				return nil, &RefNotFoundError{Pointer: NewPointer(p.tokens[:i+1]...).String()}
			}
			cur = cur.Items()[idx]
		default:
			return nil, &RefNotFoundError{Pointer: NewPointer(p.tokens[:i+1]...).String()}
		}
	}
	return cur, nil
}

// parseArrayIndex validates a pointer token as an array index: a
// non-negative decimal with no leading zeros, except "0" itself.
func parseArrayIndex(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	if tok == "0" {
		return 0, true
	}
	if tok[0] == '0' || tok[0] < '0' || tok[0] > '9' {
		return 0, false
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isJSONPointer reports whether s looks like a JSON Pointer (begins with
// "/").
func isJSONPointer(s string) bool {
	return strings.HasPrefix(s, "/")
}
