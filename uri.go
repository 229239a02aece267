package schema

import (
	"net/url"
	"path"
	"strings"
)

// Normalize applies RFC 3986 normalization: case-folds scheme and host,
// and removes dot segments from the path via path.Clean.
func Normalize(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Path != "" {
		u.Path = path.Clean(u.Path)
		if u.Path == "." {
			u.Path = ""
		}
	}
	return u.String()
}

// Defrag strips the fragment component from a URI.
func Defrag(uri string) string {
	base, _ := SplitFragment(uri)
	return base
}

// SplitFragment separates a URI into its pre-fragment and fragment parts.
func SplitFragment(uri string) (base string, fragment string) {
	parts := strings.SplitN(uri, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return uri, ""
}

// IsAbsolute reports whether the normalized URI carries a scheme or host.
func IsAbsolute(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && (u.Scheme != "" || u.Host != "")
}

// Join resolves rel against base per RFC 3986 reference resolution.
func Join(base, rel string) string {
	if IsAbsolute(rel) {
		return Normalize(rel)
	}
	baseURL, err := url.Parse(base)
	if err != nil || (baseURL.Scheme == "" && baseURL.Host == "") {
		return rel
	}
	relURL, err := url.Parse(rel)
	if err != nil {
		return rel
	}
	return baseURL.ResolveReference(relURL).String()
}

// getURLScheme extracts the scheme of a URI string.
func getURLScheme(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return u.Scheme
}
