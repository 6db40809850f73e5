package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chiclang/chicweb/pkg/locale"
	"github.com/chiclang/chicweb/pkg/storage"
)

// DefaultConcurrency bounds how many entries a listing resolves at once.
const DefaultConcurrency = 8

// Resolver loads docs and blog posts for a locale, falling back to the
// default locale when a translation does not exist.
type Resolver struct {
	store       storage.Storage
	locales     *locale.Registry
	docs        *DocsRegistry
	cache       Cache
	markdown    *Markdown
	logger      *slog.Logger
	concurrency int
}

// Option configures Resolver.
type Option func(*Resolver)

// WithCache sets the parsed document cache. Defaults to NopCache.
func WithCache(c Cache) Option {
	return func(r *Resolver) {
		if c != nil {
			r.cache = c
		}
	}
}

// WithDocs sets the docs registry. Defaults to DefaultDocs.
func WithDocs(d *DocsRegistry) Option {
	return func(r *Resolver) {
		if d != nil {
			r.docs = d
		}
	}
}

// WithMarkdown sets the markdown renderer.
func WithMarkdown(m *Markdown) Option {
	return func(r *Resolver) {
		if m != nil {
			r.markdown = m
		}
	}
}

// WithLogger sets the resolver logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithConcurrency bounds listing fan-out. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewResolver creates a resolver reading from store for the locales in reg.
func NewResolver(store storage.Storage, reg *locale.Registry, opts ...Option) *Resolver {
	r := &Resolver{
		store:       store,
		locales:     reg,
		docs:        DefaultDocs(),
		cache:       NopCache{},
		markdown:    NewMarkdown(),
		logger:      slog.New(slog.DiscardHandler),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Locales returns the locale registry the resolver was built with.
func (r *Resolver) Locales() *locale.Registry {
	return r.locales
}

// Docs returns the docs registry.
func (r *Resolver) Docs() *DocsRegistry {
	return r.docs
}

// Ping checks the underlying store.
func (r *Resolver) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// PurgeCache drops every cached document.
func (r *Resolver) PurgeCache(ctx context.Context) error {
	return r.cache.Purge(ctx)
}

// resolve implements the lookup shared by every content kind:
// the localized file wins, then the default-locale file, then ErrNotFound.
func (r *Resolver) resolve(ctx context.Context, kind Kind, loc string, slug []string) (*Page, error) {
	if !r.locales.IsLocale(loc) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, loc)
	}
	if err := validateSlug(slug); err != nil {
		return nil, errors.Join(ErrNotFound, err)
	}

	doc, err := r.load(ctx, filePath(kind, loc, slug))
	if err == nil {
		return r.page(kind, slug, loc, loc, doc), nil
	}
	if !isMissing(err) {
		return nil, err
	}

	def := r.locales.DefaultLocale()
	if loc == def {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, contentPath(kind, slug))
	}

	doc, err = r.load(ctx, filePath(kind, def, slug))
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, contentPath(kind, slug))
		}
		return nil, err
	}

	r.logger.DebugContext(ctx, "serving fallback content",
		slog.String("kind", string(kind)),
		slog.String("slug", strings.Join(slug, "/")),
		slog.String("requested_locale", loc),
		slog.String("source_locale", def),
	)
	return r.page(kind, slug, loc, def, doc), nil
}

// hasTranslation reports whether the localized file for loc exists.
func (r *Resolver) hasTranslation(ctx context.Context, kind Kind, loc string, slug []string) bool {
	if !r.locales.IsLocale(loc) || validateSlug(slug) != nil {
		return false
	}
	key := filePath(kind, loc, slug)
	if _, ok := r.cache.Get(ctx, key); ok {
		return true
	}
	return r.store.Exists(ctx, key)
}

// load returns the parsed document at key, using the cache when possible.
func (r *Resolver) load(ctx context.Context, key string) (*Document, error) {
	if doc, ok := r.cache.Get(ctx, key); ok {
		return doc, nil
	}

	raw, err := r.store.Read(ctx, key)
	if err != nil {
		if isMissing(err) {
			return nil, err
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	meta, body, err := ParseDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	html, err := r.markdown.Render(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	doc := &Document{Meta: meta, Body: string(body), HTML: html}
	r.cache.Set(ctx, key, doc)
	return doc, nil
}

func (r *Resolver) page(kind Kind, slug []string, requested, source string, doc *Document) *Page {
	p := &Page{
		Kind:            kind,
		Slug:            append([]string(nil), slug...),
		RequestedLocale: requested,
		SourceLocale:    source,
		IsFallback:      requested != source,
		Meta:            doc.Meta,
		Body:            doc.Body,
		HTML:            doc.HTML,
	}
	p.Meta.Tags = append([]string(nil), doc.Meta.Tags...)
	p.Meta.Related = append([]Link(nil), doc.Meta.Related...)

	if kind == KindDoc {
		if e, ok := r.docs.Lookup(slug); ok {
			p.Section = e.Section
			if p.Meta.Title == "" {
				p.Meta.Title = e.Title
			}
		}
	}
	if p.Meta.Title == "" {
		p.Meta.Title = slug[len(slug)-1]
	}
	return p
}

func filePath(kind Kind, loc string, slug []string) string {
	return string(kind) + "/" + loc + "/" + strings.Join(slug, "/") + ".md"
}

func isMissing(err error) bool {
	return errors.Is(err, storage.ErrFileNotFound) || errors.Is(err, storage.ErrInvalidPath)
}

// validateSlug accepts non-empty slugs whose segments are plain path names.
func validateSlug(slug []string) error {
	if len(slug) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidSlug)
	}
	for _, seg := range slug {
		switch {
		case seg == "", seg == ".", seg == "..":
			return fmt.Errorf("%w: segment %q", ErrInvalidSlug, seg)
		case strings.ContainsAny(seg, "/\\\x00"):
			return fmt.Errorf("%w: segment %q", ErrInvalidSlug, seg)
		}
	}
	return nil
}
