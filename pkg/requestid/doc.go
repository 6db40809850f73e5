// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a client-supplied X-Request-ID when it is at most 128
// characters of letters, digits, '-' and '_'. Anything else is replaced with
// a fresh UUIDv7. The id is stored in the request context, written back to
// the request header and echoed in the response.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// LoggerExtractor plugs the id into pkg/logger so every record logged with
// the request context carries request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
