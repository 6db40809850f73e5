package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var builtinMessages []byte

// Catalog holds UI strings per locale. Lookups fall back from the requested
// locale to the default locale and finally to the key itself, the same order
// content pages follow.
type Catalog struct {
	defaultLocale string
	logger        *slog.Logger
	logMissing    bool

	mu       sync.RWMutex
	messages map[string]map[string]string // locale -> dotted key -> template
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for missing-key warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMissingLogging logs a warning whenever a key is missing for the
// default locale too.
func WithMissingLogging() Option {
	return func(c *Catalog) { c.logMissing = true }
}

// NewCatalog returns a catalog preloaded with the built-in messages.
func NewCatalog(defaultLocale string, opts ...Option) (*Catalog, error) {
	if defaultLocale == "" {
		return nil, fmt.Errorf("%w: empty default locale", ErrInvalidCatalog)
	}
	c := &Catalog{
		defaultLocale: defaultLocale,
		logger:        slog.New(slog.DiscardHandler),
		messages:      make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Merge(builtinMessages); err != nil {
		return nil, err
	}
	return c, nil
}

// Merge parses a YAML document of the form
//
//	fr-FR:
//	  errors:
//	    not_found: "Page introuvable"
//
// and overrides existing messages with it.
func (c *Catalog) Merge(data []byte) error {
	parsed, err := ParseYAML(data)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for loc, msgs := range parsed {
		if c.messages[loc] == nil {
			c.messages[loc] = make(map[string]string, len(msgs))
		}
		maps.Copy(c.messages[loc], msgs)
	}
	return nil
}

// ParseYAML flattens a locale-keyed YAML document into dotted keys.
func ParseYAML(data []byte) (map[string]map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	out := make(map[string]map[string]string, len(raw))
	for loc, v := range raw {
		tree, ok := v.(map[string]any)
		if loc == "" || !ok {
			return nil, fmt.Errorf("%w: locale %q must map to messages", ErrInvalidCatalog, loc)
		}
		flat := make(map[string]string)
		if err := flatten("", tree, flat); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, loc, err)
		}
		out[loc] = flat
	}
	return out, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}

// DefaultLocale returns the locale used when a key is missing.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales returns the locales that have at least one message, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.messages))
}

// Has reports whether locale itself defines key.
func (c *Catalog) Has(locale, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[locale][key]
	return ok
}

// T returns the message for key in locale with %{name} placeholders replaced
// from args, given as name, value pairs. An odd trailing arg is ignored.
func (c *Catalog) T(locale, key string, args ...string) string {
	c.mu.RLock()
	tmpl, ok := c.messages[locale][key]
	if !ok {
		tmpl, ok = c.messages[c.defaultLocale][key]
	}
	c.mu.RUnlock()

	if !ok {
		if c.logMissing {
			c.logger.Warn("missing translation", slog.String("locale", locale), slog.String("key", key))
		}
		tmpl = key
	}
	return substitute(tmpl, args)
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
