package site

import (
	"context"
	"io"

	"github.com/chiclang/chicweb/pkg/feed"
)

// Feed builds the RSS channel of loc's blog with absolute links under
// SITE_URL. Fallback posts are included with their default-locale text.
func (s *Site) Feed(ctx context.Context, loc string) (feed.Channel, error) {
	posts, err := s.resolver.ListBlogPosts(ctx, loc)
	if err != nil {
		return feed.Channel{}, err
	}

	ch := feed.Channel{
		Title:       s.catalog.T(loc, "blog.title"),
		Link:        s.cfg.AbsoluteURL(s.locales.WithLocale(loc, "/blog")),
		Description: s.catalog.T(loc, "blog.description"),
		Language:    loc,
		Items:       make([]feed.Item, 0, len(posts)),
	}
	for _, p := range posts {
		ch.Items = append(ch.Items, feed.Item{
			Title:       p.Meta.Title,
			Link:        s.cfg.AbsoluteURL(s.locales.WithLocale(loc, p.Path())),
			PubDate:     p.Meta.Date,
			Description: p.Meta.Description,
		})
	}
	return ch, nil
}

// WriteFeed writes loc's RSS document to w.
func (s *Site) WriteFeed(ctx context.Context, w io.Writer, loc string) error {
	ch, err := s.Feed(ctx, loc)
	if err != nil {
		return err
	}
	return feed.Write(w, ch)
}

func feedWriter(ch feed.Channel) func(io.Writer) error {
	return func(w io.Writer) error { return feed.Write(w, ch) }
}
