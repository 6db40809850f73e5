package locale

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// DefaultLocale is the locale used by the built-in registry when nothing else matches.
const DefaultLocale = "en-US"

// BuiltinLocales is the ordered set of locales the site ships with.
var BuiltinLocales = []string{
	"en-US",
	"es-ES",
	"fr-FR",
	"it-IT",
	"ja-JP",
	"pt-BR",
	"ru-RU",
	"zh-CN",
}

var localeShape = regexp.MustCompile(`^[A-Za-z]{2}-[A-Za-z]{2}$`)

// Registry is the closed set of supported locales plus the default one.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	locales       []string
	set           map[string]struct{}
	defaultLocale string
	languages     map[string]string
}

// Option configures a Registry.
type Option func(*registryConfig)

type registryConfig struct {
	languages map[string]string
}

// WithLanguage maps a primary language subtag (e.g. "pt") to a supported locale.
// It overrides the entry derived from the supported list.
func WithLanguage(subtag, locale string) Option {
	return func(c *registryConfig) {
		subtag = strings.ToLower(strings.TrimSpace(subtag))
		if subtag == "" {
			return
		}
		c.languages[subtag] = locale
	}
}

// New builds a registry from an ordered list of locale tags and a default.
// Tags are stored verbatim: no case folding or canonicalization is applied.
func New(supported []string, defaultLocale string, opts ...Option) (*Registry, error) {
	if len(supported) == 0 {
		return nil, ErrNoLocales
	}

	r := &Registry{
		locales:       make([]string, 0, len(supported)),
		set:           make(map[string]struct{}, len(supported)),
		defaultLocale: defaultLocale,
		languages:     make(map[string]string, len(supported)),
	}

	for _, l := range supported {
		if l == "" {
			return nil, ErrEmptyLocale
		}
		if _, ok := r.set[l]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLocale, l)
		}
		r.set[l] = struct{}{}
		r.locales = append(r.locales, l)

		// First locale carrying a primary subtag wins.
		lang := primarySubtag(strings.ToLower(l))
		if _, ok := r.languages[lang]; lang != "" && !ok {
			r.languages[lang] = l
		}
	}

	if _, ok := r.set[defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrDefaultNotSupported, defaultLocale)
	}

	cfg := &registryConfig{languages: make(map[string]string)}
	for _, opt := range opts {
		opt(cfg)
	}
	for lang, target := range cfg.languages {
		if !r.IsLocale(target) {
			return nil, fmt.Errorf("%w: %s -> %q", ErrLanguageTarget, lang, target)
		}
		r.languages[lang] = target
	}

	return r, nil
}

// MustNew works like New but panics on invalid input.
func MustNew(supported []string, defaultLocale string, opts ...Option) *Registry {
	r, err := New(supported, defaultLocale, opts...)
	if err != nil {
		panic(fmt.Sprintf("locale: %v", err))
	}
	return r
}

// Default returns a registry over BuiltinLocales with DefaultLocale as default.
func Default() *Registry {
	return MustNew(BuiltinLocales, DefaultLocale)
}

// Locales returns the supported locales in registration order.
func (r *Registry) Locales() []string {
	return slices.Clone(r.locales)
}

// DefaultLocale returns the default locale. It is always a member of the set.
func (r *Registry) DefaultLocale() string {
	return r.defaultLocale
}

// IsLocale reports whether v is byte-for-byte one of the supported locales.
// "en-us" is not "en-US".
func (r *Registry) IsLocale(v string) bool {
	_, ok := r.set[v]
	return ok
}

// LocaleForLanguage returns the locale mapped to a lowercase primary subtag.
func (r *Registry) LocaleForLanguage(subtag string) (string, bool) {
	l, ok := r.languages[subtag]
	return l, ok
}

// LooksLikeLocale reports whether v has the shape of a region-qualified tag
// (two letters, hyphen, two letters) regardless of whether it is supported.
func LooksLikeLocale(v string) bool {
	return localeShape.MatchString(v)
}

func primarySubtag(tag string) string {
	if idx := strings.IndexByte(tag, '-'); idx >= 0 {
		return tag[:idx]
	}
	return tag
}
