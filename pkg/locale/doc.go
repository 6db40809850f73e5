// Package locale implements locale-prefixed URL routing for the site.
//
// A Registry holds the closed, ordered set of supported locale tags and the
// default locale. Membership is exact and case-sensitive: "en-us" is not a
// supported locale even when "en-US" is. The registry also owns the primary
// language subtag table used to turn an Accept-Language header into a locale.
//
// # Paths
//
// Every public page lives under a /{locale} prefix. WithLocale adds the
// prefix and StripLocale removes it:
//
//	reg := locale.Default()
//	reg.WithLocale("fr-FR", "/docs/mission") // "/fr-FR/docs/mission"
//	reg.WithLocale("fr-FR", "/")             // "/fr-FR"
//	reg.StripLocale("/fr-FR/docs/mission")   // {fr-FR /docs/mission}
//	reg.StripLocale("/docs/mission")         // {en-US /docs/mission}
//
// # Accept-Language
//
// PickFromAcceptLanguage walks the header left to right, ignoring quality
// weights, and returns the first entry whose primary subtag maps to a
// supported locale. It never fails; the default locale is the answer when
// nothing matches.
//
// # Middleware
//
// Middleware runs in front of the router. Static files pass through, the root
// path and unprefixed paths are redirected, locale-shaped but unsupported
// prefixes pass through so the router can answer 404, and locale-prefixed
// requests are annotated with X-Chic-Locale, X-Chic-Pathname and
// X-Chic-Pathname-No-Locale headers plus an Info value in the request
// context:
//
//	r := chi.NewRouter()
//	r.Use(locale.Middleware(reg, locale.WithLogger(log)))
//	r.Get("/{locale}/docs/*", func(w http.ResponseWriter, r *http.Request) {
//		info, _ := locale.FromContext(r.Context())
//		fmt.Fprintln(w, info.Locale, info.PathnameNoLocale)
//	})
package locale
