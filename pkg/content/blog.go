package content

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/chiclang/chicweb/pkg/storage"
)

// BlogPost returns the blog post slug for loc.
func (r *Resolver) BlogPost(ctx context.Context, loc, slug string) (*Page, error) {
	return r.resolve(ctx, KindBlog, loc, []string{slug})
}

// HasBlogPostTranslation reports whether the post has a file for loc itself.
func (r *Resolver) HasBlogPostTranslation(ctx context.Context, loc, slug string) bool {
	return r.hasTranslation(ctx, KindBlog, loc, []string{slug})
}

// BlogSlugs returns the slugs of every post in the default locale, which
// defines the set of posts that exist.
func (r *Resolver) BlogSlugs(ctx context.Context) ([]string, error) {
	dir := string(KindBlog) + "/" + r.locales.DefaultLocale()

	entries, err := r.store.List(ctx, dir)
	if err != nil {
		if errors.Is(err, storage.ErrDirectoryNotFound) {
			return []string{}, nil
		}
		return nil, errors.Join(ErrFailedToList, err)
	}

	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir || !strings.HasSuffix(e.Name, ".md") {
			continue
		}
		slug := strings.TrimSuffix(e.Name, ".md")
		if validateSlug([]string{slug}) != nil {
			continue
		}
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)
	return slugs, nil
}

// ListBlogPosts resolves every post for loc, newest first. Posts sharing a
// date are ordered by slug.
func (r *Resolver) ListBlogPosts(ctx context.Context, loc string) ([]Page, error) {
	if !r.locales.IsLocale(loc) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, loc)
	}

	slugs, err := r.BlogSlugs(ctx)
	if err != nil {
		return nil, err
	}

	resolved := make([]*Page, len(slugs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, slug := range slugs {
		g.Go(func() error {
			p, err := r.resolve(gctx, KindBlog, loc, []string{slug})
			if err != nil {
				// Removed between listing and reading.
				if errors.Is(err, ErrNotFound) {
					return nil
				}
				return fmt.Errorf("%w: %s: %w", ErrFailedToList, slug, err)
			}
			resolved[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	posts := make([]Page, 0, len(resolved))
	for _, p := range resolved {
		if p != nil {
			posts = append(posts, *p)
		}
	}
	slices.SortStableFunc(posts, compareBlogPosts)
	return posts, nil
}

func compareBlogPosts(a, b Page) int {
	if c := b.Meta.Date.Compare(a.Meta.Date); c != 0 {
		return c
	}
	return strings.Compare(a.Key(), b.Key())
}
