package content

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chiclang/chicweb/pkg/storage"
)

// DocsManifestPath is where LoadDocsManifest looks for the docs registry.
const DocsManifestPath = "docs.yaml"

// DocEntry is one entry of the canonical docs list.
type DocEntry struct {
	Slug    []string
	Title   string
	Section string
}

// Key is the slug joined with "/".
func (e DocEntry) Key() string {
	return strings.Join(e.Slug, "/")
}

// DocsRegistry is the ordered, locale-independent list of known doc pages.
type DocsRegistry struct {
	entries []DocEntry
	index   map[string]int
}

// NewDocsRegistry validates entries and builds a registry preserving their order.
func NewDocsRegistry(entries []DocEntry) (*DocsRegistry, error) {
	r := &DocsRegistry{
		entries: make([]DocEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if err := validateSlug(e.Slug); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidManifest, e.Key(), err)
		}
		if _, ok := r.index[e.Key()]; ok {
			return nil, fmt.Errorf("%w: duplicate slug %q", ErrInvalidManifest, e.Key())
		}
		e.Slug = slices.Clone(e.Slug)
		r.index[e.Key()] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// DefaultDocs is the docs registry used when no manifest is present.
func DefaultDocs() *DocsRegistry {
	r, err := NewDocsRegistry([]DocEntry{
		{Slug: []string{"mission"}, Title: "Mission", Section: "Overview"},
		{Slug: []string{"getting-started"}, Title: "Getting Started", Section: "Overview"},
		{Slug: []string{"install"}, Title: "Installation", Section: "Overview"},
		{Slug: []string{"language", "syntax"}, Title: "Syntax", Section: "Language"},
		{Slug: []string{"language", "types"}, Title: "Types", Section: "Language"},
		{Slug: []string{"language", "generics"}, Title: "Generics", Section: "Language"},
		{Slug: []string{"language", "async"}, Title: "Async", Section: "Language"},
		{Slug: []string{"tooling", "cli"}, Title: "Command Line", Section: "Tooling"},
		{Slug: []string{"tooling", "lsp"}, Title: "Language Server", Section: "Tooling"},
		{Slug: []string{"tooling", "editors"}, Title: "Editor Support", Section: "Tooling"},
	})
	if err != nil {
		panic(err)
	}
	return r
}

// Entries returns the registry entries in order.
func (r *DocsRegistry) Entries() []DocEntry {
	out := make([]DocEntry, len(r.entries))
	for i, e := range r.entries {
		e.Slug = slices.Clone(e.Slug)
		out[i] = e
	}
	return out
}

// Lookup returns the entry for slug.
func (r *DocsRegistry) Lookup(slug []string) (DocEntry, bool) {
	i, ok := r.index[strings.Join(slug, "/")]
	if !ok {
		return DocEntry{}, false
	}
	return r.entries[i], true
}

// Len returns the number of entries.
func (r *DocsRegistry) Len() int {
	return len(r.entries)
}

type manifest struct {
	Sections []struct {
		Title string `yaml:"title"`
		Pages []struct {
			Slug  string `yaml:"slug"`
			Title string `yaml:"title"`
		} `yaml:"pages"`
	} `yaml:"sections"`
}

// ParseDocsManifest reads a YAML docs manifest:
//
//	sections:
//	  - title: Overview
//	    pages:
//	      - slug: mission
//	        title: Mission
//	      - slug: language/syntax
//	        title: Syntax
func ParseDocsManifest(data []byte) (*DocsRegistry, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(ErrInvalidManifest, err)
	}

	var entries []DocEntry
	for _, s := range m.Sections {
		for _, p := range s.Pages {
			entries = append(entries, DocEntry{
				Slug:    strings.Split(strings.Trim(p.Slug, "/"), "/"),
				Title:   p.Title,
				Section: s.Title,
			})
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrInvalidManifest)
	}
	return NewDocsRegistry(entries)
}

// LoadDocsManifest reads DocsManifestPath from store. When the manifest does
// not exist it returns DefaultDocs.
func LoadDocsManifest(ctx context.Context, store storage.Storage) (*DocsRegistry, error) {
	data, err := store.Read(ctx, DocsManifestPath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return DefaultDocs(), nil
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return ParseDocsManifest(data)
}
