package locale

import "strings"

// Stripped is the result of splitting a locale prefix off a pathname.
type Stripped struct {
	Locale   string
	Pathname string
}

// NormalizePath adds a leading slash and removes trailing slashes.
// The empty path and any run of slashes normalize to "/".
func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

// WithLocale prefixes pathname with /{locale}. The root path collapses to
// /{locale}, never /{locale}/.
func (r *Registry) WithLocale(locale, pathname string) string {
	p := NormalizePath(pathname)
	if p == "/" {
		return "/" + locale
	}
	return "/" + locale + p
}

// StripLocale removes a supported locale prefix from pathname.
// When the first segment is not a supported locale the normalized input is
// returned with the default locale.
func (r *Registry) StripLocale(pathname string) Stripped {
	p := NormalizePath(pathname)
	first, rest := splitFirstSegment(p)
	if first != "" && r.IsLocale(first) {
		return Stripped{Locale: first, Pathname: NormalizePath(rest)}
	}
	return Stripped{Locale: r.defaultLocale, Pathname: p}
}

// splitFirstSegment splits "/a/b/c" into "a" and "/b/c".
// The root path yields an empty first segment.
func splitFirstSegment(p string) (string, string) {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "", "/"
	}
	if idx := strings.IndexByte(p, '/'); idx >= 0 {
		return p[:idx], p[idx:]
	}
	return p, "/"
}
