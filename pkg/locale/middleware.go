package locale

import (
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// Request headers attached to locale-prefixed requests for downstream handlers.
const (
	HeaderLocale           = "X-Chic-Locale"
	HeaderPathname         = "X-Chic-Pathname"
	HeaderPathnameNoLocale = "X-Chic-Pathname-No-Locale"
)

// DefaultStaticExtensions lists file extensions that bypass locale routing.
var DefaultStaticExtensions = []string{
	".avif", ".css", ".gif", ".ico", ".jpeg", ".jpg", ".js", ".json", ".map",
	".mjs", ".png", ".svg", ".txt", ".wasm", ".webmanifest", ".webp",
	".woff", ".woff2", ".xml",
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	redirectCode int
	staticExt    map[string]struct{}
	logger       *slog.Logger
}

// WithRedirectCode sets the status used for locale redirects (default 307).
func WithRedirectCode(code int) MiddlewareOption {
	return func(c *middlewareConfig) {
		if code >= 300 && code < 400 {
			c.redirectCode = code
		}
	}
}

// WithStaticExtensions replaces the list of extensions treated as static files.
// Extensions are matched case-insensitively and may omit the leading dot.
func WithStaticExtensions(exts ...string) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.staticExt = extensionSet(exts)
	}
}

// WithLogger sets the logger used for redirect decisions.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware classifies every request by its path and either redirects it to
// a locale-prefixed URL or passes it through.
//
// Evaluation order:
//  1. static file (extension on the last segment): pass through untouched
//  2. root "/": redirect to the locale picked from Accept-Language
//  3. unsupported first segment shaped like a locale (xx-XX): pass through
//     untouched so routing answers 404 for that locale
//  4. any other unsupported first segment: redirect to the default locale
//  5. supported locale: pass through with X-Chic-* headers and Info in context
func Middleware(reg *Registry, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		redirectCode: http.StatusTemporaryRedirect,
		staticExt:    extensionSet(DefaultStaticExtensions),
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only the middleware may set these.
			r.Header.Del(HeaderLocale)
			r.Header.Del(HeaderPathname)
			r.Header.Del(HeaderPathnameNoLocale)

			pathname := r.URL.Path
			if cfg.isStatic(pathname) {
				next.ServeHTTP(w, r)
				return
			}

			first, _ := splitFirstSegment(NormalizePath(pathname))

			switch {
			case first == "":
				picked := reg.PickFromAcceptLanguage(r.Header.Get("Accept-Language"))
				cfg.redirect(w, r, reg.WithLocale(picked, "/"))

			case !reg.IsLocale(first) && LooksLikeLocale(first):
				next.ServeHTTP(w, r)

			case !reg.IsLocale(first):
				cfg.redirect(w, r, reg.WithLocale(reg.DefaultLocale(), pathname))

			default:
				stripped := reg.StripLocale(pathname)
				info := Info{
					Locale:           stripped.Locale,
					Pathname:         pathname,
					PathnameNoLocale: stripped.Pathname,
				}

				r = r.WithContext(WithContext(r.Context(), info))
				r.Header.Set(HeaderLocale, info.Locale)
				r.Header.Set(HeaderPathname, info.Pathname)
				r.Header.Set(HeaderPathnameNoLocale, info.PathnameNoLocale)
				w.Header().Set("Content-Language", info.Locale)

				next.ServeHTTP(w, r)
			}
		})
	}
}

func (c *middlewareConfig) isStatic(pathname string) bool {
	ext := strings.ToLower(path.Ext(pathname))
	if ext == "" {
		return false
	}
	_, ok := c.staticExt[ext]
	return ok
}

func (c *middlewareConfig) redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	c.logger.DebugContext(r.Context(), "locale redirect",
		slog.String("from", r.URL.Path),
		slog.String("to", target),
	)
	http.Redirect(w, r, target, c.redirectCode)
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}
