package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/chiclang/chicweb/pkg/logger"
	"github.com/chiclang/chicweb/pkg/requestid"
)

// Translator looks up a localized message. *i18n.Catalog satisfies it.
type Translator interface {
	T(locale, key string, args ...string) string
}

// Classifier maps a domain error to an HTTPError. It reports false for errors
// it does not know.
type Classifier func(err error) (HTTPError, bool)

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

type errorHandlerConfig struct {
	translator  Translator
	classifiers []Classifier
}

// WithTranslator localizes error messages by the request locale.
func WithTranslator(t Translator) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		c.translator = t
	}
}

// WithClassifiers adds classifiers consulted in order before falling back to
// the HTTPError carried by the error itself.
func WithClassifiers(cs ...Classifier) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		c.classifiers = append(c.classifiers, cs...)
	}
}

// Classify returns the HTTPError err maps to.
func Classify(err error, classifiers ...Classifier) HTTPError {
	for _, classify := range classifiers {
		if classify == nil {
			continue
		}
		if he, ok := classify(err); ok {
			return he
		}
	}
	return HTTPErrorOf(err)
}

// NewErrorHandler renders errors as the JSON error envelope. Client errors
// are logged at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	cfg := &errorHandlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		he := Classify(err, cfg.classifiers...)
		reqID := requestid.FromContext(r.Context())

		level := slog.LevelError
		if he.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			logger.Status(he.Code),
			slog.String("method", r.Method),
			logger.Path(r.URL.Path),
			logger.Component("error_handler"),
		)

		detail := ErrorDetail{
			Code:      errorCode(he.Key),
			Message:   http.StatusText(he.Code),
			RequestID: reqID,
		}
		if cfg.translator != nil {
			detail.Message = cfg.translator.T(ctx.Locale(), he.Key)
		}

		if renderErr := JSONError(he.Code, detail).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

// errorCode strips the catalog namespace: "errors.not_found" -> "not_found".
func errorCode(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}
