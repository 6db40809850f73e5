package site

import (
	"log/slog"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chiclang/chicweb/pkg/handler"
	"github.com/chiclang/chicweb/pkg/httpserver"
	"github.com/chiclang/chicweb/pkg/locale"
	"github.com/chiclang/chicweb/pkg/logger"
	"github.com/chiclang/chicweb/pkg/requestid"
)

// localeParam constrains {locale} to the xx-XX shape so root-level static
// files such as /favicon.ico never match a locale route. Config.Validate
// rejects LOCALES entries of any other shape.
const localeParam = "{locale:[A-Za-z]{2}-[A-Za-z]{2}}"

const readinessTimeout = 3 * time.Second

// Handler builds the HTTP routing tree.
func (s *Site) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		accessLog(s.log),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(s.log, readinessTimeout, s.Checks()...))
	r.Get("/api/locales", handler.Wrap(s.listLocales, handler.WithErrorHandler[struct{}](s.errors)))

	r.Mount("/", s.localized())
	return r
}

func (s *Site) localized() http.Handler {
	r := chi.NewRouter()
	r.Use(
		locale.Middleware(s.locales, locale.WithLogger(s.log.With(logger.Component("locale")))),
		middleware.StripSlashes,
	)

	r.Get("/"+localeParam, s.home())
	r.Route("/"+localeParam+"/docs", func(r chi.Router) {
		r.Get("/", s.docsIndex())
		r.Get("/*", s.docPage())
	})
	r.Route("/"+localeParam+"/blog", func(r chi.Router) {
		r.Get("/", s.blogIndex())
		r.Get("/rss.xml", s.blogFeed())
		r.Get("/{slug}", s.blogPost())
	})

	r.NotFound(s.notFound())
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.errors(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})
	return r
}

// notFound serves static files for static extensions when STATIC_DIR is set
// and answers everything else with the localized 404 envelope.
func (s *Site) notFound() http.HandlerFunc {
	var static http.Handler
	if s.cfg.StaticDir != "" {
		static = http.FileServer(http.Dir(s.cfg.StaticDir))
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if static != nil && isStaticPath(r.URL.Path) {
			static.ServeHTTP(w, r)
			return
		}
		s.errors(handler.NewContext(w, r), handler.ErrNotFound)
	}
}

func isStaticPath(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext != "" && slices.Contains(locale.DefaultStaticExtensions, ext)
}

// accessLog logs one line per request once the response is written.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				logger.Path(r.URL.Path),
				logger.Status(status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
				logger.Component("http"),
			)
		})
	}
}
