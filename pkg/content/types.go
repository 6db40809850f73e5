package content

import (
	"strings"
	"time"
)

// Kind is a content collection.
type Kind string

const (
	KindDoc  Kind = "docs"
	KindBlog Kind = "blog"
)

// Link is a related-content reference declared in front matter.
type Link struct {
	Title string `yaml:"title" json:"title"`
	Href  string `yaml:"href" json:"href"`
}

// Meta is the front matter of a content file.
type Meta struct {
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description,omitempty"`
	Date        time.Time `yaml:"date" json:"date,omitzero"`
	Author      string    `yaml:"author" json:"author,omitempty"`
	Tags        []string  `yaml:"tags" json:"tags,omitempty"`
	Related     []Link    `yaml:"related" json:"related,omitempty"`
	Order       int       `yaml:"order" json:"order,omitempty"`
}

// Document is a parsed content file: front matter, markdown body and the
// rendered HTML. Documents are what the cache stores.
type Document struct {
	Meta Meta   `json:"meta"`
	Body string `json:"body"`
	HTML string `json:"html"`
}

// Page is a content entry resolved for a requested locale.
//
// SourceLocale is the locale whose file supplied the content. IsFallback is
// true exactly when SourceLocale differs from RequestedLocale.
type Page struct {
	Kind            Kind     `json:"kind"`
	Slug            []string `json:"slug"`
	Section         string   `json:"section,omitempty"`
	RequestedLocale string   `json:"requestedLocale"`
	SourceLocale    string   `json:"sourceLocale"`
	IsFallback      bool     `json:"isFallback"`
	// Placeholder marks a docs listing entry with no file in any locale.
	Placeholder bool   `json:"placeholder,omitempty"`
	Meta        Meta   `json:"meta"`
	Body        string `json:"-"`
	HTML        string `json:"html,omitempty"`
}

// Key is the slug joined with "/".
func (p Page) Key() string {
	return strings.Join(p.Slug, "/")
}

// Path is the locale-free URL path of the page, e.g. "/docs/guide/intro".
func (p Page) Path() string {
	return contentPath(p.Kind, p.Slug)
}

// Alternate is one locale's version of a content entry, for locale switchers.
type Alternate struct {
	Locale     string `json:"locale"`
	Name       string `json:"name"`
	Href       string `json:"href"`
	Translated bool   `json:"translated"`
}

func contentPath(kind Kind, slug []string) string {
	if len(slug) == 0 {
		return "/" + string(kind)
	}
	return "/" + string(kind) + "/" + strings.Join(slug, "/")
}
