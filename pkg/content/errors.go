package content

import "errors"

var (
	// ErrNotFound is returned when no file exists for a slug in either the
	// requested or the default locale, or when the slug itself is invalid.
	ErrNotFound = errors.New("content not found")
	// ErrUnsupportedLocale is returned when the requested locale is not in the registry.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrInvalidSlug marks slugs that cannot name a content file. It always
	// comes joined with ErrNotFound.
	ErrInvalidSlug = errors.New("invalid slug")

	ErrFailedToLoad        = errors.New("failed to load content")
	ErrFailedToParse       = errors.New("failed to parse front matter")
	ErrFailedToRender      = errors.New("failed to render markdown")
	ErrFailedToList        = errors.New("failed to list content")
	ErrInvalidManifest     = errors.New("invalid docs manifest")
	ErrFailedToWatch       = errors.New("failed to watch content directory")
	ErrFailedToPurgeCache  = errors.New("failed to purge content cache")
	ErrCacheEntryMalformed = errors.New("malformed cache entry")
)
