package schema

import "fmt"

// SchemaParseError is returned when the schema JSON is syntactically
// invalid or violates a structural constraint (e.g. "required" is not an
// array of strings).
type SchemaParseError struct {
	Pointer string
	Err     error
}

func (e *SchemaParseError) Error() string {
	if e.Pointer != "" {
		return fmt.Sprintf("schema parse error at %s: %v", e.Pointer, e.Err)
	}
	return fmt.Sprintf("schema parse error: %v", e.Err)
}

func (e *SchemaParseError) Unwrap() error { return e.Err }

// NoBaseUriError is returned when a relative $ref cannot be resolved
// because no ancestor schema position supplies an absolute base URI.
type NoBaseUriError struct {
	Pointer string
}

func (e *NoBaseUriError) Error() string {
	return fmt.Sprintf("no base uri available to resolve ref at %s", e.Pointer)
}

// RefNotFoundError is returned when a fragment pointer does not resolve to
// any subtree of the target document.
type RefNotFoundError struct {
	Pointer string
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("ref pointer %s not found in target document", e.Pointer)
}

// RefNotASchemaError is returned when resolution produced a non-object
// JSON value where a schema was required.
type RefNotASchemaError struct {
	Ref string
}

func (e *RefNotASchemaError) Error() string {
	return fmt.Sprintf("ref %s does not resolve to a schema object", e.Ref)
}

// UnsupportedSchemeError is returned when a ref URI uses a scheme other
// than http(s) or file.
type UnsupportedSchemeError struct {
	Scheme string
	Ref    string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported scheme %q in ref %s", e.Scheme, e.Ref)
}

// FetchError is returned when fetching a remote schema document fails
// (network error, non-2xx status, missing file).
type FetchError struct {
	URI string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed: %v", e.URI, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
