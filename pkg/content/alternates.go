package content

import (
	"context"

	"github.com/chiclang/chicweb/pkg/locale"
)

// Alternates lists the entry at slug in every supported locale, marking the
// locales that only serve fallback content.
func (r *Resolver) Alternates(ctx context.Context, kind Kind, slug []string) []Alternate {
	locales := r.locales.Locales()
	out := make([]Alternate, 0, len(locales))
	for _, loc := range locales {
		out = append(out, Alternate{
			Locale:     loc,
			Name:       locale.DisplayName(loc),
			Href:       r.locales.WithLocale(loc, contentPath(kind, slug)),
			Translated: r.hasTranslation(ctx, kind, loc, slug),
		})
	}
	return out
}
