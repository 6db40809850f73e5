package binder

import "net/http"

// Query binds URL query parameters into fields tagged `query:"name"`.
//
//	type listRequest struct {
//		Tags  []string `query:"tag"`
//		Limit int      `query:"limit"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindFields(v, "query", func(name string) []string { return q[name] }, ErrFailedToParseQuery)
	}
}
