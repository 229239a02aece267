package schema

import (
	"context"
	"errors"
)

// ResolveOptions configures the resolve phase.
type ResolveOptions struct {
	// Download permits fetching remote ($ref) documents. Refs that would
	// require a fetch fail with FetchError when false (the safe default:
	// a caller must opt in to network/file access).
	Download bool
	// IDKey is the keyword used to establish a schema position's base
	// URI; defaults to "id" (Draft-4; later drafts use "$id").
	IDKey string
	// RefKey is the keyword used for references; defaults to "$ref".
	RefKey string
	// Fetcher retrieves external schema documents. Defaults to a
	// MultiFetcher wired with the file:// and http(s):// fetchers.
	Fetcher Fetcher
	// ExcludedDataKeys lists keys whose subtrees hold data, not schema,
	// and so are never treated as schema positions. Defaults to
	// {"default", "enum"}.
	ExcludedDataKeys map[string]struct{}
}

func (o ResolveOptions) withDefaults() ResolveOptions {
	if o.IDKey == "" {
		o.IDKey = defaultIDKey
	}
	if o.RefKey == "" {
		o.RefKey = defaultRefKey
	}
	if o.ExcludedDataKeys == nil {
		o.ExcludedDataKeys = defaultExcludedDataKeys
	}
	if o.Fetcher == nil {
		o.Fetcher = NewMultiFetcher()
	}
	return o
}

// WithDefaults fills in the zero-valued fields of o (IDKey, RefKey,
// ExcludedDataKeys, Fetcher), for callers that build a Walk call directly
// instead of going through Resolve.
func (o ResolveOptions) WithDefaults() ResolveOptions { return o.withDefaults() }

var errDownloadDisabled = errors.New("remote schema fetch disabled (ResolveOptions.Download is false)")

// Resolve performs the in-place $ref expansion: it mutates schema (and
// any documents it fetches) so that, on success, no
// schema position reachable from schema carries a $ref key (cycles
// excepted; see docState/resolveAt below). Returns schema for chaining.
func Resolve(root *JSONValue, opts ResolveOptions) (*JSONValue, error) {
	opts = opts.withDefaults()
	r := &resolverState{
		opts:    opts,
		fetcher: opts.Fetcher,
		docs:    map[string]*docState{},
		docBusy: map[string]struct{}{},
	}
	ds := newDocState(root, "", opts)
	r.docs[""] = ds
	if err := r.resolveDocument(ds); err != nil {
		return root, err
	}
	return root, nil
}

// docState holds everything the resolver needs for one document: its own
// identity (key/uri, empty for the top-level document unless it was
// itself fetched), the id/$ref maps from Walk, and the bookkeeping used
// for cycle-safe, idempotent resolution.
type docState struct {
	key  string // "" for the top-level document
	uri  string // implicit base URI for root-level refs with no ancestor id; same as key for fetched docs
	doc  *JSONValue
	ids  IDMap
	refs RefMap
	opts ResolveOptions

	absBase  map[string]string
	resolved map[string]struct{}
	busy     map[string]struct{}
}

func newDocState(doc *JSONValue, uri string, opts ResolveOptions) *docState {
	ids, refs := Walk(doc, opts.IDKey, opts.RefKey, opts.ExcludedDataKeys)
	return &docState{
		key: uri, uri: uri, doc: doc, ids: ids, refs: refs, opts: opts,
		absBase:  map[string]string{},
		resolved: map[string]struct{}{},
		busy:     map[string]struct{}{},
	}
}

// idAbsoluteURI computes a schema position's absolute base URI. ptr
// must carry its own id (be a key of ds.ids).
func (ds *docState) idAbsoluteURI(ptr string) (string, error) {
	if b, ok := ds.absBase[ptr]; ok {
		return b, nil
	}
	idVal := ds.ids[ptr]

	var base string
	if IsAbsolute(idVal) {
		base = Defrag(idVal)
	} else {
		ancestorPtr, ok := nearestAncestorWithID(ds.ids, ptr)
		var ancestorBase string
		if ok {
			b, err := ds.idAbsoluteURI(ancestorPtr)
			if err != nil {
				return "", err
			}
			ancestorBase = b
		} else if ds.uri != "" {
			ancestorBase = ds.uri
		} else {
			return "", &NoBaseUriError{Pointer: ptr}
		}
		base = Join(ancestorBase+"/", "../"+Defrag(idVal))
	}
	ds.absBase[ptr] = base
	return base, nil
}

// refBaseURI computes the base URI a $ref at refPtr resolves relative
// to: the nearest STRICT ancestor in ids (ignoring any id refPtr itself
// might carry), or the document's own implicit base.
func (ds *docState) refBaseURI(refPtr string) (string, error) {
	ancestorPtr, ok := nearestAncestorWithID(ds.ids, refPtr)
	if ok {
		return ds.idAbsoluteURI(ancestorPtr)
	}
	if ds.uri != "" {
		return ds.uri, nil
	}
	return "", &NoBaseUriError{Pointer: refPtr}
}

// nearestAncestorWithID walks strict ancestors of ptr, longest (nearest)
// first, returning the first one present in ids.
func nearestAncestorWithID(ids IDMap, ptr string) (string, bool) {
	p := ParsePointer(ptr)
	for {
		parent, ok := p.Parent()
		if !ok {
			return "", false
		}
		if _, exists := ids[parent.String()]; exists {
			return parent.String(), true
		}
		p = parent
	}
}

// findLocalIDMatch implements the tie-break for when an absolute URI
// names both a remote document and an id already present in the current
// document: the in-document id wins.
func (ds *docState) findLocalIDMatch(targetDocURI string) (string, bool) {
	for ptr := range ds.ids {
		if abs, err := ds.idAbsoluteURI(ptr); err == nil && abs == targetDocURI {
			return ptr, true
		}
	}
	return "", false
}

type resolverState struct {
	opts    ResolveOptions
	fetcher Fetcher
	docs    map[string]*docState
	docBusy map[string]struct{}
}

// resolveDocument resolves every $ref recorded by Walk for ds. Walk ran
// once, before any substitution, so every $ref-bearing position -- even
// ones nested inside another ref's eventual target -- is already known;
// substitution never needs to discover new positions.
func (r *resolverState) resolveDocument(ds *docState) error {
	for ptr := range ds.refs {
		if err := r.resolveAt(ds, ptr); err != nil {
			return err
		}
	}
	return nil
}

// resolveAt resolves the single $ref at ptr within ds. Cycle safety:
// ds.busy guards re-entry; a cyclic ref is left substituted with its
// target's *current* (possibly
// still-$ref-bearing) content rather than recursed into further, which
// terminates while leaving a harmless dangling $ref key that the
// validation engine silently ignores as an unknown keyword.
func (r *resolverState) resolveAt(ds *docState, ptr string) error {
	if _, done := ds.resolved[ptr]; done {
		return nil
	}
	if _, busy := ds.busy[ptr]; busy {
		return nil
	}
	ds.busy[ptr] = struct{}{}
	defer delete(ds.busy, ptr)

	refStr := ds.refs[ptr]
	targetDocKey, targetPtr, err := r.locateTarget(ds, ptr, refStr)
	if err != nil {
		return err
	}

	targetDS := ds
	if targetDocKey != ds.key {
		targetDS, err = r.getResolvedDoc(targetDocKey)
		if err != nil {
			return err
		}
	} else if _, pending := ds.refs[targetPtr]; pending && targetPtr != ptr {
		// Ensure a same-document target is itself settled before we
		// alias its content, so resolution unwinds through chains of
		// plain (non-cyclic) $refs.
		if err := r.resolveAt(ds, targetPtr); err != nil {
			return err
		}
	}

	targetNode, err := ParsePointer(targetPtr).Follow(targetDS.doc)
	if err != nil {
		return &RefNotFoundError{Pointer: targetPtr}
	}
	if !targetNode.IsObject() {
		return &RefNotASchemaError{Ref: refStr}
	}

	node, err := ParsePointer(ptr).Follow(ds.doc)
	if err != nil {
		return err
	}
	// In-place substitution: clearing node's keys and copying target's is
	// equivalent to aliasing the same underlying OrderedObject, which
	// also gives the reference sharing cyclic schema graphs need.
	node.objVal = targetNode.objVal
	ds.resolved[ptr] = struct{}{}
	return nil
}

// locateTarget resolves refStr to a target document and pointer (minus
// the fetch, delegated to getResolvedDoc), returning the resolved
// document's key and the pointer of the target subschema within it.
func (r *resolverState) locateTarget(ds *docState, ptr, refStr string) (docKey string, targetPtr string, err error) {
	// Checked before base-URI resolution: an inline id shortcut.
	for idPtr, idVal := range ds.ids {
		if idVal == refStr {
			return ds.key, idPtr, nil
		}
	}

	pre, frag := SplitFragment(refStr)

	targetDocKey := ds.key
	localRoot := ""
	switch {
	case pre == "":
		// current document
	case IsAbsolute(pre):
		targetDocKey = Normalize(pre)
	default:
		// Only a relative, non-empty reference needs a base URI.
		base, err := ds.refBaseURI(ptr)
		if err != nil {
			return "", "", err
		}
		targetDocKey = Join(base+"/", "../"+pre)
	}

	if pre != "" && targetDocKey != ds.key {
		if localPtr, ok := ds.findLocalIDMatch(targetDocKey); ok {
			targetDocKey = ds.key
			localRoot = localPtr
		}
	}

	if frag != "" && !isJSONPointer(frag) {
		return "", "", &RefNotFoundError{Pointer: frag}
	}

	full := ParsePointer(localRoot)
	if frag != "" {
		fragTokens := ParsePointer(frag).Tokens()
		full = NewPointer(append(append([]string{}, full.Tokens()...), fragTokens...)...)
	}
	return targetDocKey, full.String(), nil
}

// getResolvedDoc returns the fully-resolved docState for an external
// document, fetching and recursively resolving it if not already cached.
func (r *resolverState) getResolvedDoc(docKey string) (*docState, error) {
	if ds, ok := r.docs[docKey]; ok {
		return ds, nil
	}
	if _, busy := r.docBusy[docKey]; busy {
		// Cross-document cycle: return the in-progress (possibly
		// partially resolved) state rather than recursing further.
		return r.docs[docKey], nil
	}
	if !r.opts.Download {
		return nil, &FetchError{URI: docKey, Err: errDownloadDisabled}
	}
	r.docBusy[docKey] = struct{}{}
	defer delete(r.docBusy, docKey)

	doc, err := r.fetcher.Get(context.Background(), docKey)
	if err != nil {
		return nil, err
	}
	ds := newDocState(doc, docKey, r.opts)
	r.docs[docKey] = ds
	if err := r.resolveDocument(ds); err != nil {
		return nil, err
	}
	return ds, nil
}
