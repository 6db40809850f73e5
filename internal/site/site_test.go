package site_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiclang/chicweb/internal/site"
	"github.com/chiclang/chicweb/pkg/content"
	"github.com/chiclang/chicweb/pkg/handler"
)

var contentFiles = map[string]string{
	"docs.yaml": `
sections:
  - title: Overview
    pages:
      - slug: mission
        title: Mission
  - title: Guide
    pages:
      - slug: guide/intro
        title: Introduction
      - slug: guide/later
        title: Coming soon
`,
	"docs/en-US/mission.md":     "---\ntitle: Mission\n---\n# Our mission\n",
	"docs/fr-FR/mission.md":     "---\ntitle: Notre mission\n---\n# Notre mission\n",
	"docs/en-US/guide/intro.md": "---\ntitle: Intro\n---\nHello.\n",
	"blog/en-US/launch.md":      "---\ntitle: Launch\ndescription: Chic 1.0 is out\ndate: 2025-03-01\ntags: [release]\n---\nWe launched.\n",
	"blog/en-US/alpha.md":       "---\ntitle: Alpha\ndate: 2025-01-10\ntags: [preview]\n---\nAlpha.\n",
	"blog/fr-FR/launch.md":      "---\ntitle: Lancement\ndate: 2025-03-01\ntags: [release]\n---\nNous avons lancé.\n",
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(body), 0o644))
	}
	return root
}

func testConfig(t *testing.T) site.Config {
	t.Helper()
	return site.Config{
		AppEnv:           "test",
		SiteURL:          "https://chic-lang.dev",
		SiteTitle:        "Chic",
		DefaultLocale:    "en-US",
		ContentBackend:   site.BackendLocal,
		ContentDir:       writeTree(t, contentFiles),
		StaticDir:        writeTree(t, map[string]string{"favicon.ico": "icon", "assets/app.js": "console.log(1)"}),
		ContentCache:     site.CacheMemory,
		ContentCacheSize: 64,
		ListConcurrency:  4,
	}
}

func newSite(t *testing.T) *site.Site {
	t.Helper()
	s, err := site.New(context.Background(), testConfig(t), nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func get(t *testing.T, h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		r.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

type envelope[T any] struct {
	Data  T                    `json:"data"`
	Meta  map[string]any       `json:"meta"`
	Error *handler.ErrorDetail `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

type pageBody struct {
	Page       content.Page        `json:"page"`
	Alternates []content.Alternate `json:"alternates"`
	Notice     string              `json:"notice"`
}

func TestRedirects(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{"root picks accept-language", "/", "fr-CA,fr;q=0.9", "/fr-FR"},
		{"root without header", "/", "", "/en-US"},
		{"unprefixed path keeps query", "/docs/mission?ref=nav", "", "/en-US/docs/mission?ref=nav"},
		{"unknown segment", "/blog", "ja", "/en-US/blog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			header := http.Header{}
			if tt.accept != "" {
				header.Set("Accept-Language", tt.accept)
			}
			rec := get(t, h, tt.target, header)
			assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestDocPage(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	t.Run("translated", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/fr-FR/docs/mission", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decode[pageBody](t, rec).Data
		assert.Equal(t, "fr-FR", body.Page.SourceLocale)
		assert.False(t, body.Page.IsFallback)
		assert.Equal(t, "Notre mission", body.Page.Meta.Title)
		assert.Equal(t, "Overview", body.Page.Section)
		assert.Contains(t, body.Page.HTML, "<h1")
		assert.Empty(t, body.Notice)
		assert.Len(t, body.Alternates, 8)
		assert.Equal(t, "fr-FR", rec.Header().Get("Content-Language"))
	})

	t.Run("fallback to default locale", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/fr-FR/docs/guide/intro", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decode[pageBody](t, rec).Data
		assert.Equal(t, "fr-FR", body.Page.RequestedLocale)
		assert.Equal(t, "en-US", body.Page.SourceLocale)
		assert.True(t, body.Page.IsFallback)
		assert.True(t, strings.HasPrefix(body.Notice, "Cette page n'a pas encore été traduite"), body.Notice)
		assert.Equal(t, "en-US", rec.Header().Get("Content-Language"))

		for _, alt := range body.Alternates {
			assert.Equal(t, alt.Locale == "en-US", alt.Translated, alt.Locale)
			assert.Equal(t, "/"+alt.Locale+"/docs/guide/intro", alt.Href)
		}
	})
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{"missing doc", "/fr-FR/docs/nope", "Page introuvable"},
		{"missing post", "/ja-JP/blog/nope", "ページが見つかりません"},
		{"unknown route under locale", "/es-ES/about", "Página no encontrada"},
		{"unsupported locale shape", "/de-DE/docs/mission", "Page not found"},
		{"wrong case locale", "/fr-fr/docs/mission", "Page not found"},
		{"invalid slug", "/en-US/docs/a/../b", "Page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, h, tt.target, nil)
			require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

			env := decode[any](t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "not_found", env.Error.Code)
			assert.Equal(t, tt.wantMsg, env.Error.Message)
			assert.NotEmpty(t, env.Error.RequestID)
			assert.Equal(t, rec.Header().Get("X-Request-ID"), env.Error.RequestID)
		})
	}
}

func TestDocsIndex(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	type section struct {
		Title string         `json:"title"`
		Pages []content.Page `json:"pages"`
	}
	rec := get(t, h, "/fr-FR/docs", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	sections := decode[struct {
		Locale   string    `json:"locale"`
		Sections []section `json:"sections"`
	}](t, rec).Data.Sections

	require.Len(t, sections, 2)
	assert.Equal(t, "Overview", sections[0].Title)
	assert.Equal(t, "Guide", sections[1].Title)
	require.Len(t, sections[1].Pages, 2)
	assert.True(t, sections[1].Pages[0].IsFallback)
	assert.True(t, sections[1].Pages[1].Placeholder)
	assert.Equal(t, "Coming soon", sections[1].Pages[1].Meta.Title)
	assert.Empty(t, sections[0].Pages[0].HTML, "listings carry no bodies")
}

func TestBlogIndex(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	type index struct {
		Title string         `json:"title"`
		Feed  string         `json:"feed"`
		Posts []content.Page `json:"posts"`
	}
	slugs := func(posts []content.Page) []string {
		out := make([]string, 0, len(posts))
		for _, p := range posts {
			out = append(out, p.Key())
		}
		return out
	}

	rec := get(t, h, "/fr-FR/blog", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[index](t, rec).Data
	assert.Equal(t, "Blog Chic", body.Title)
	assert.Equal(t, "/fr-FR/blog/rss.xml", body.Feed)
	assert.Equal(t, []string{"launch", "alpha"}, slugs(body.Posts))
	assert.False(t, body.Posts[0].IsFallback)
	assert.True(t, body.Posts[1].IsFallback)

	rec = get(t, h, "/fr-FR/blog?tag=preview", nil)
	assert.Equal(t, []string{"alpha"}, slugs(decode[index](t, rec).Data.Posts))

	rec = get(t, h, "/fr-FR/blog?limit=1", nil)
	assert.Equal(t, []string{"launch"}, slugs(decode[index](t, rec).Data.Posts))

	rec = get(t, h, "/fr-FR/blog?limit=many", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Requête invalide", decode[any](t, rec).Error.Message)
}

func TestBlogPost(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	rec := get(t, h, "/es-ES/blog/launch", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[pageBody](t, rec).Data
	assert.True(t, body.Page.IsFallback)
	assert.Equal(t, "Launch", body.Page.Meta.Title)
	assert.NotEmpty(t, body.Notice)
}

func TestBlogFeed(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	rec := get(t, h, "/fr-FR/blog/rss.xml", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/rss+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "fr-FR", rec.Header().Get("Content-Language"))

	xml := rec.Body.String()
	assert.Contains(t, xml, `<rss version="2.0">`)
	assert.Contains(t, xml, "<title>Blog Chic</title>")
	assert.Contains(t, xml, "<language>fr-fr</language>")
	assert.Contains(t, xml, "<link>https://chic-lang.dev/fr-FR/blog/launch</link>")
	assert.Contains(t, xml, "<title>Lancement</title>")
	assert.Less(t, strings.Index(xml, "Lancement"), strings.Index(xml, "Alpha"))

	rec = get(t, h, "/de-DE/blog/rss.xml", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Language"), "failed feeds carry no language")
}

func TestHome(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	rec := get(t, h, "/it-IT", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	type homeBody struct {
		Site    string         `json:"site"`
		Locale  string         `json:"locale"`
		Docs    string         `json:"docs"`
		Latest  []content.Page `json:"latest"`
		Locales []any          `json:"locales"`
	}
	body := decode[homeBody](t, rec).Data
	assert.Equal(t, "Chic", body.Site)
	assert.Equal(t, "it-IT", body.Locale)
	assert.Equal(t, "/it-IT/docs", body.Docs)
	assert.Len(t, body.Latest, 2)
	assert.Len(t, body.Locales, 8)
}

func TestServiceRoutes(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		wantBody string
	}{
		{"liveness", http.MethodGet, "/healthz", http.StatusOK, "ALIVE"},
		{"readiness", http.MethodGet, "/readyz", http.StatusOK, "READY"},
		{"static at root", http.MethodGet, "/favicon.ico", http.StatusOK, "icon"},
		{"static nested", http.MethodGet, "/assets/app.js", http.StatusOK, "console.log(1)"},
		{"method not allowed", http.MethodPost, "/en-US/docs", http.StatusMethodNotAllowed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}

	rec := get(t, h, "/api/locales", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode[[]struct {
		Locale  string `json:"locale"`
		Default bool   `json:"default"`
	}](t, rec)
	assert.Len(t, env.Data, 8)
	assert.Equal(t, "en-US", env.Meta["default"])
}

func TestNewInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*site.Config)
	}{
		{"relative site url", func(c *site.Config) { c.SiteURL = "/chic" }},
		{"unknown backend", func(c *site.Config) { c.ContentBackend = "ftp" }},
		{"s3 without bucket", func(c *site.Config) { c.ContentBackend = site.BackendS3 }},
		{"unknown cache", func(c *site.Config) { c.ContentCache = "disk" }},
		{"zero memory cache", func(c *site.Config) { c.ContentCacheSize = 0 }},
		{"zero concurrency", func(c *site.Config) { c.ListConcurrency = 0 }},
		{"default not supported", func(c *site.Config) { c.Locales = []string{"fr-FR"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig(t)
			tt.mutate(&cfg)
			_, err := site.New(context.Background(), cfg, nil)
			assert.ErrorIs(t, err, site.ErrInvalidConfig)
		})
	}
}

func TestLocaleShapeIsValidated(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Locales = []string{"en-US", "fr-FR", "zh-Hant", "pt"}

	_, err := site.New(context.Background(), cfg, nil)
	require.ErrorIs(t, err, site.ErrInvalidConfig)
	assert.ErrorContains(t, err, `"zh-Hant"`)
	assert.ErrorContains(t, err, `"pt"`)
	assert.NotContains(t, err.Error(), `"fr-FR"`)

	cfg.Locales = []string{"en-US", "fr-FR", "de-DE"}
	require.NoError(t, cfg.Validate())
}

func TestSupportedLocales(t *testing.T) {
	t.Parallel()

	cfg := site.Config{Locales: []string{" en-US", "fr-FR ", ""}}
	assert.Equal(t, []string{"en-US", "fr-FR"}, cfg.SupportedLocales())
	assert.Len(t, site.Config{}.SupportedLocales(), 8)
	assert.Equal(t, "https://chic-lang.dev/en-US", site.Config{SiteURL: "https://chic-lang.dev/"}.AbsoluteURL("/en-US"))
}

func TestWriteFeed(t *testing.T) {
	t.Parallel()
	s := newSite(t)

	var b strings.Builder
	require.NoError(t, s.WriteFeed(context.Background(), &b, "en-US"))
	assert.Contains(t, b.String(), "<description>Chic 1.0 is out</description>")

	err := s.WriteFeed(context.Background(), &b, "xx-XX")
	assert.ErrorIs(t, err, content.ErrUnsupportedLocale)
}

func TestTranslations(t *testing.T) {
	t.Parallel()
	s := newSite(t)
	ctx := context.Background()

	docs, err := s.Translations(ctx, content.KindDoc)
	require.NoError(t, err)
	assert.Len(t, docs.Locales, 8)
	require.Len(t, docs.Rows, 3)
	assert.Equal(t, "mission", docs.Rows[0].Slug)
	assert.ElementsMatch(t, []string{"es-ES", "it-IT", "ja-JP", "pt-BR", "ru-RU", "zh-CN"}, docs.Missing(docs.Rows[0]))
	assert.Equal(t, "guide/later", docs.Rows[2].Slug)
	assert.Len(t, docs.Missing(docs.Rows[2]), 8)

	blog, err := s.Translations(ctx, content.KindBlog)
	require.NoError(t, err)
	require.Len(t, blog.Rows, 2)
	assert.Equal(t, "alpha", blog.Rows[0].Slug)
	assert.Equal(t, "launch", blog.Rows[1].Slug)
	assert.NotContains(t, blog.Missing(blog.Rows[1]), "fr-FR")

	_, err = s.Translations(ctx, content.Kind("wiki"))
	assert.ErrorIs(t, err, site.ErrUnknownKind)
}

func TestTrailingSlash(t *testing.T) {
	t.Parallel()
	h := newSite(t).Handler()

	for _, target := range []string{"/fr-FR/", "/fr-FR/docs/", "/fr-FR/docs/mission/", "/fr-FR/blog/launch/"} {
		rec := get(t, h, target, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}
