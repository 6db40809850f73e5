// Package handler wraps typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request struct filled by binders and
// returns a Response. Errors are returned as responses too (Error), so every
// failure goes through a single ErrorHandler:
//
//	errs := handler.NewErrorHandler(log,
//		handler.WithTranslator(catalog),
//		handler.WithClassifiers(classifyContentError),
//	)
//	r.Get("/{locale}/blog/{slug}", handler.Wrap(showPost,
//		handler.WithBinders[postRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[postRequest](errs),
//	))
//
// The error handler answers with the JSON envelope
//
//	{"error":{"code":"not_found","message":"Page introuvable","request_id":"..."}}
//
// where the message is looked up in the request's locale.
package handler
