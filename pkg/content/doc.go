// Package content resolves documentation pages and blog posts for a locale.
//
// Content lives in a read-only storage.Storage with one directory per kind
// and locale:
//
//	docs/<locale>/<slug segments...>.md
//	blog/<locale>/<slug>.md
//	docs.yaml
//
// Each file is a YAML front matter block followed by a markdown body. The
// body is rendered to HTML with goldmark.
//
// # Fallback
//
// A lookup for locale L reads the file for L first. When it is missing and L
// is not the default locale, the default-locale file is served instead and the
// returned Page reports SourceLocale = default and IsFallback = true. When
// neither exists the lookup fails with ErrNotFound:
//
//	res := content.NewResolver(store, locale.Default())
//	page, err := res.Doc(ctx, "fr-FR", []string{"mission"})
//	if errors.Is(err, content.ErrNotFound) {
//	    // 404
//	}
//	if page.IsFallback {
//	    // show "not yet translated" notice
//	}
//
// # Listings
//
// ListDocs follows the docs registry (DefaultDocs, or docs.yaml loaded with
// LoadDocsManifest). ListBlogPosts uses the default-locale blog directory as
// the set of posts and sorts them by date, newest first, then by slug.
// Entries are resolved concurrently, bounded by WithConcurrency.
//
// # Caching
//
// Parsed documents are cached by store path. MemoryCache is an in-process LRU
// with optional TTL, RedisCache shares entries between instances. Watcher
// purges a cache when files under a local content directory change.
package content
