// Package site wires the Chic website server: it builds the content store,
// page cache, resolver and message catalog from Config and exposes them as
// an HTTP handler.
//
// Routes under /{locale} serve JSON documents with rendered HTML bodies. Every
// other path goes through the locale middleware first, which redirects it to
// a locale-prefixed URL or lets static files and unsupported-locale paths
// through.
package site
