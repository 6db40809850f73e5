package locale

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// Info is the locale metadata the edge middleware derives for a request.
type Info struct {
	Locale           string
	Pathname         string
	PathnameNoLocale string
}

// WithContext stores request locale metadata in ctx.
func WithContext(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, contextKey{}, info)
}

// FromContext returns the locale metadata stored by Middleware.
func FromContext(ctx context.Context) (Info, bool) {
	if ctx == nil {
		return Info{}, false
	}
	info, ok := ctx.Value(contextKey{}).(Info)
	return info, ok
}

// LoggerExtractor returns a logger context extractor adding the request locale.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if info, ok := FromContext(ctx); ok && info.Locale != "" {
			return slog.String("locale", info.Locale), true
		}
		return slog.Attr{}, false
	}
}
