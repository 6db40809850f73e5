package locale_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiclang/chicweb/pkg/locale"
)

type capture struct {
	called  bool
	request *http.Request
}

func (c *capture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.request = r
		w.WriteHeader(http.StatusOK)
	})
}

func serve(t *testing.T, mw func(http.Handler) http.Handler, target string, header http.Header) (*httptest.ResponseRecorder, *capture) {
	t.Helper()
	c := &capture{}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	mw(c.handler()).ServeHTTP(rec, req)
	return rec, c
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	mw := locale.Middleware(locale.Default())

	t.Run("root without Accept-Language redirects to default", func(t *testing.T) {
		t.Parallel()
		rec, c := serve(t, mw, "/", nil)

		assert.False(t, c.called)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/en-US", rec.Header().Get("Location"))
	})

	t.Run("root picks locale from Accept-Language", func(t *testing.T) {
		t.Parallel()
		rec, c := serve(t, mw, "/", http.Header{"Accept-Language": {"fr-CA, fr;q=0.9, en;q=0.8"}})

		assert.False(t, c.called)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/fr-FR", rec.Header().Get("Location"))
	})

	t.Run("unprefixed path redirects to default locale", func(t *testing.T) {
		t.Parallel()
		rec, c := serve(t, mw, "/docs/mission", http.Header{"Accept-Language": {"fr"}})

		assert.False(t, c.called)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/en-US/docs/mission", rec.Header().Get("Location"))
	})

	t.Run("redirect keeps query and drops trailing slash", func(t *testing.T) {
		t.Parallel()
		rec, _ := serve(t, mw, "/blog/?page=2", nil)

		assert.Equal(t, "/en-US/blog?page=2", rec.Header().Get("Location"))
	})

	t.Run("wrong-case locale passes through to not-found", func(t *testing.T) {
		t.Parallel()
		_, c := serve(t, mw, "/fr-fr/docs", nil)
		require.True(t, c.called)
		assert.Empty(t, c.request.Header.Get(locale.HeaderLocale))
	})

	t.Run("unsupported locale shape passes through untouched", func(t *testing.T) {
		t.Parallel()
		rec, c := serve(t, mw, "/xx-XX/docs/mission", nil)

		require.True(t, c.called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, c.request.Header.Get(locale.HeaderLocale))
		_, ok := locale.FromContext(c.request.Context())
		assert.False(t, ok)
	})

	t.Run("static asset passes through untouched", func(t *testing.T) {
		t.Parallel()
		for _, p := range []string{"/favicon.ico", "/images/logo.SVG", "/_next/static/app.js", "/fr-FR/robots.txt"} {
			rec, c := serve(t, mw, p, nil)
			require.True(t, c.called, p)
			assert.Equal(t, http.StatusOK, rec.Code, p)
			assert.Empty(t, c.request.Header.Get(locale.HeaderLocale), p)
		}
	})

	t.Run("supported locale is annotated", func(t *testing.T) {
		t.Parallel()
		rec, c := serve(t, mw, "/fr-FR/docs/mission", nil)

		require.True(t, c.called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "fr-FR", c.request.Header.Get(locale.HeaderLocale))
		assert.Equal(t, "/fr-FR/docs/mission", c.request.Header.Get(locale.HeaderPathname))
		assert.Equal(t, "/docs/mission", c.request.Header.Get(locale.HeaderPathnameNoLocale))
		assert.Equal(t, "fr-FR", rec.Header().Get("Content-Language"))

		info, ok := locale.FromContext(c.request.Context())
		require.True(t, ok)
		assert.Equal(t, locale.Info{
			Locale:           "fr-FR",
			Pathname:         "/fr-FR/docs/mission",
			PathnameNoLocale: "/docs/mission",
		}, info)
	})

	t.Run("locale root is annotated", func(t *testing.T) {
		t.Parallel()
		_, c := serve(t, mw, "/ja-JP", nil)

		require.True(t, c.called)
		assert.Equal(t, "/", c.request.Header.Get(locale.HeaderPathnameNoLocale))
	})

	t.Run("client supplied headers are discarded", func(t *testing.T) {
		t.Parallel()
		_, c := serve(t, mw, "/xx-XX", http.Header{locale.HeaderLocale: {"fr-FR"}})

		require.True(t, c.called)
		assert.Empty(t, c.request.Header.Get(locale.HeaderLocale))
	})
}

func TestMiddlewareOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom redirect code", func(t *testing.T) {
		t.Parallel()
		mw := locale.Middleware(locale.Default(), locale.WithRedirectCode(http.StatusFound))
		rec, _ := serve(t, mw, "/docs", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("invalid redirect code ignored", func(t *testing.T) {
		t.Parallel()
		mw := locale.Middleware(locale.Default(), locale.WithRedirectCode(http.StatusOK))
		rec, _ := serve(t, mw, "/docs", nil)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	})

	t.Run("custom static extensions", func(t *testing.T) {
		t.Parallel()
		mw := locale.Middleware(locale.Default(), locale.WithStaticExtensions("pdf"))

		_, c := serve(t, mw, "/papers/spec.pdf", nil)
		assert.True(t, c.called)

		rec, c := serve(t, mw, "/favicon.ico", nil)
		assert.False(t, c.called)
		assert.Equal(t, "/en-US/favicon.ico", rec.Header().Get("Location"))
	})
}
