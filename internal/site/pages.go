package site

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/chiclang/chicweb/pkg/binder"
	"github.com/chiclang/chicweb/pkg/content"
	"github.com/chiclang/chicweb/pkg/handler"
	"github.com/chiclang/chicweb/pkg/locale"
)

const homeLatestPosts = 3

type localeRequest struct {
	Locale string `path:"locale"`
}

type docRequest struct {
	Locale string `path:"locale"`
	Path   string `path:"*"`
}

type blogListRequest struct {
	Locale string   `path:"locale"`
	Tags   []string `query:"tag"`
	Limit  int      `query:"limit"`
}

type postRequest struct {
	Locale string `path:"locale"`
	Slug   string `path:"slug"`
}

// pageView is a single doc or post with its locale switcher entries.
type pageView struct {
	Page       content.Page        `json:"page"`
	Alternates []content.Alternate `json:"alternates"`
	// Notice is the localized "not translated yet" banner for fallback pages.
	Notice string `json:"notice,omitempty"`
}

type docsSection struct {
	Title string         `json:"title"`
	Pages []content.Page `json:"pages"`
}

type docsIndexView struct {
	Locale   string        `json:"locale"`
	Sections []docsSection `json:"sections"`
}

type blogIndexView struct {
	Locale string         `json:"locale"`
	Title  string         `json:"title"`
	Feed   string         `json:"feed"`
	Posts  []content.Page `json:"posts"`
}

type homeView struct {
	Site    string         `json:"site"`
	Locale  string         `json:"locale"`
	Name    string         `json:"name"`
	Docs    string         `json:"docs"`
	Blog    string         `json:"blog"`
	Latest  []content.Page `json:"latest"`
	Locales []locale.Entry `json:"locales"`
}

func wrap[R any](s *Site, h handler.HandlerFunc[R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[R](binders...),
		handler.WithErrorHandler[R](s.errors),
	)
}

var pathParams handler.Bind = binder.Path(chi.URLParam)

func (s *Site) home() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req localeRequest) handler.Response {
		posts, err := s.resolver.ListBlogPosts(ctx, req.Locale)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(homeView{
			Site:    s.cfg.SiteTitle,
			Locale:  req.Locale,
			Name:    locale.DisplayName(req.Locale),
			Docs:    s.locales.WithLocale(req.Locale, "/docs"),
			Blog:    s.locales.WithLocale(req.Locale, "/blog"),
			Latest:  summaries(posts[:min(len(posts), homeLatestPosts)]),
			Locales: s.locales.Entries(),
		})
	}, pathParams)
}

func (s *Site) docsIndex() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req localeRequest) handler.Response {
		pages, err := s.resolver.ListDocs(ctx, req.Locale)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(docsIndexView{Locale: req.Locale, Sections: groupSections(pages)})
	}, pathParams)
}

func (s *Site) docPage() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req docRequest) handler.Response {
		slug := splitSlug(req.Path)
		page, err := s.resolver.Doc(ctx, req.Locale, slug)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(s.pageView(ctx, page), handler.WithJSONHeader("Content-Language", page.SourceLocale))
	}, pathParams)
}

func (s *Site) blogIndex() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req blogListRequest) handler.Response {
		if req.Limit < 0 {
			return handler.Error(handler.ErrBadRequest)
		}
		posts, err := s.resolver.ListBlogPosts(ctx, req.Locale)
		if err != nil {
			return handler.Error(err)
		}
		posts = filterTags(posts, req.Tags)
		if req.Limit > 0 {
			posts = posts[:min(len(posts), req.Limit)]
		}
		return handler.JSON(blogIndexView{
			Locale: req.Locale,
			Title:  s.catalog.T(req.Locale, "blog.title"),
			Feed:   s.locales.WithLocale(req.Locale, "/blog/rss.xml"),
			Posts:  summaries(posts),
		})
	}, pathParams, binder.Query())
}

func (s *Site) blogPost() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req postRequest) handler.Response {
		page, err := s.resolver.BlogPost(ctx, req.Locale, req.Slug)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(s.pageView(ctx, page), handler.WithJSONHeader("Content-Language", page.SourceLocale))
	}, pathParams)
}

func (s *Site) blogFeed() http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, req localeRequest) handler.Response {
		ch, err := s.Feed(ctx, req.Locale)
		if err != nil {
			return handler.Error(err)
		}
		return handler.Write("application/rss+xml; charset=utf-8", feedWriter(ch))
	},
		handler.WithBinders[localeRequest](pathParams),
		handler.WithErrorHandler[localeRequest](s.errors),
		handler.WithDecorators[localeRequest](feedLanguage),
	)
}

// feedLanguage sets Content-Language on feeds. The locale middleware passes
// .xml paths through untouched, so nothing else sets it.
func feedLanguage(next handler.HandlerFunc[localeRequest]) handler.HandlerFunc[localeRequest] {
	return func(ctx handler.Context, req localeRequest) handler.Response {
		resp := next(ctx, req)
		if resp == nil {
			return nil
		}
		return contentLanguage{Response: resp, lang: req.Locale}
	}
}

type contentLanguage struct {
	handler.Response
	lang string
}

func (c contentLanguage) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Language", c.lang)
	if err := c.Response.Render(w, r); err != nil {
		w.Header().Del("Content-Language")
		return err
	}
	return nil
}

func (s *Site) listLocales(handler.Context, struct{}) handler.Response {
	return handler.JSON(s.locales.Entries(), handler.WithJSONMeta(map[string]any{
		"default": s.locales.DefaultLocale(),
	}))
}

func (s *Site) pageView(ctx handler.Context, page *content.Page) pageView {
	v := pageView{
		Page:       *page,
		Alternates: s.resolver.Alternates(ctx, page.Kind, page.Slug),
	}
	if page.IsFallback {
		v.Notice = s.catalog.T(page.RequestedLocale, "content.fallback_notice",
			"language", locale.DisplayName(page.RequestedLocale),
			"source", locale.DisplayName(page.SourceLocale),
		)
	}
	return v
}

// splitSlug turns the docs wildcard "guide/intro/" into its segments. Empty
// segments are kept so the resolver rejects them as invalid slugs.
func splitSlug(p string) []string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// summaries drops rendered bodies from listing entries.
func summaries(pages []content.Page) []content.Page {
	out := make([]content.Page, len(pages))
	for i, p := range pages {
		p.HTML = ""
		out[i] = p
	}
	return out
}

// groupSections groups docs by section in manifest order.
func groupSections(pages []content.Page) []docsSection {
	var sections []docsSection
	for _, p := range summaries(pages) {
		i := slices.IndexFunc(sections, func(s docsSection) bool { return s.Title == p.Section })
		if i < 0 {
			sections = append(sections, docsSection{Title: p.Section})
			i = len(sections) - 1
		}
		sections[i].Pages = append(sections[i].Pages, p)
	}
	return sections
}

func filterTags(posts []content.Page, tags []string) []content.Page {
	if len(tags) == 0 {
		return posts
	}
	return slices.DeleteFunc(slices.Clone(posts), func(p content.Page) bool {
		return !slices.ContainsFunc(tags, func(t string) bool {
			return slices.ContainsFunc(p.Meta.Tags, func(pt string) bool { return strings.EqualFold(pt, t) })
		})
	})
}
