package site

import (
	"context"
	"fmt"
	"strings"

	"github.com/chiclang/chicweb/pkg/content"
)

// TranslationReport shows, per content entry, which locales have their own
// file. Translated[i] lines up with Locales[i].
type TranslationReport struct {
	Kind    content.Kind
	Locales []string
	Rows    []TranslationRow
}

type TranslationRow struct {
	Slug       string
	Translated []bool
}

// Missing returns the locales of the row that fall back to the default.
func (r TranslationReport) Missing(row TranslationRow) []string {
	var out []string
	for i, ok := range row.Translated {
		if !ok {
			out = append(out, r.Locales[i])
		}
	}
	return out
}

// Translations builds the report for docs (manifest order) or blog posts
// (slug order).
func (s *Site) Translations(ctx context.Context, kind content.Kind) (TranslationReport, error) {
	var (
		slugs [][]string
		has   func(context.Context, string, []string) bool
	)
	switch kind {
	case content.KindDoc:
		for _, e := range s.resolver.Docs().Entries() {
			slugs = append(slugs, e.Slug)
		}
		has = s.resolver.HasDocTranslation
	case content.KindBlog:
		posts, err := s.resolver.BlogSlugs(ctx)
		if err != nil {
			return TranslationReport{}, err
		}
		for _, p := range posts {
			slugs = append(slugs, []string{p})
		}
		has = func(ctx context.Context, loc string, slug []string) bool {
			return s.resolver.HasBlogPostTranslation(ctx, loc, slug[0])
		}
	default:
		return TranslationReport{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	report := TranslationReport{Kind: kind, Locales: s.locales.Locales()}
	for _, slug := range slugs {
		row := TranslationRow{
			Slug:       strings.Join(slug, "/"),
			Translated: make([]bool, len(report.Locales)),
		}
		for i, loc := range report.Locales {
			row.Translated[i] = has(ctx, loc, slug)
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}
