package content

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Doc returns the doc page at slug for loc.
func (r *Resolver) Doc(ctx context.Context, loc string, slug []string) (*Page, error) {
	return r.resolve(ctx, KindDoc, loc, slug)
}

// HasDocTranslation reports whether the doc at slug has a file for loc itself.
// Fallback content does not count.
func (r *Resolver) HasDocTranslation(ctx context.Context, loc string, slug []string) bool {
	return r.hasTranslation(ctx, KindDoc, loc, slug)
}

// ListDocs returns one page per docs registry entry, in registry order.
// Entries with no file in any locale are returned as placeholders so the
// index stays complete.
func (r *Resolver) ListDocs(ctx context.Context, loc string) ([]Page, error) {
	if !r.locales.IsLocale(loc) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, loc)
	}

	entries := r.docs.Entries()
	pages := make([]Page, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, e := range entries {
		g.Go(func() error {
			p, err := r.resolve(gctx, KindDoc, loc, e.Slug)
			switch {
			case err == nil:
				pages[i] = *p
			case errors.Is(err, ErrNotFound):
				pages[i] = Page{
					Kind:            KindDoc,
					Slug:            e.Slug,
					Section:         e.Section,
					RequestedLocale: loc,
					SourceLocale:    loc,
					Placeholder:     true,
					Meta:            Meta{Title: e.Title},
				}
			default:
				return fmt.Errorf("%w: %s: %w", ErrFailedToList, e.Key(), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
