package handler

import (
	"net/http"
)

// HandlerFunc handles a request already bound into R.
//
//	type postRequest struct {
//		Slug string `path:"slug"`
//	}
//
//	h := handler.HandlerFunc[postRequest](func(ctx handler.Context, req postRequest) handler.Response {
//		page, err := resolver.BlogPost(ctx, ctx.Locale(), req.Slug)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(page)
//	})
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses part of a request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for an error from binding, the handler or
// rendering.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to WithDecorators
// is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []Bind
	errorHandler ErrorHandler
	decorators   []Decorator[R]
}

// WithBinders appends binders applied in order before the handler runs.
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler replaces the default plain-text error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators appends decorators around the handler.
func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

func defaultErrorHandler(ctx Context, err error) {
	status := StatusOf(err)
	http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
}

// Wrap converts a typed HandlerFunc to an http.HandlerFunc.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, WithStatus(err, ErrBadRequest))
				return
			}
		}

		resp := final(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
