// Package binder fills request structs from the parts of an HTTP request the
// site reads: router path parameters and the query string.
//
//	type postRequest struct {
//		Locale string `path:"locale"`
//		Slug   string `path:"slug"`
//	}
//
//	h := handler.Wrap(fn, handler.WithBinders[handler.Context, postRequest](
//		binder.Path(chi.URLParam),
//		binder.Query(),
//	))
//
// Supported field kinds are string, signed and unsigned integers, bool,
// pointers to those, and slices of them.
package binder
