package locale

import "errors"

var (
	// ErrNoLocales is returned when a registry is built from an empty locale list.
	ErrNoLocales = errors.New("at least one supported locale is required")
	// ErrDuplicateLocale is returned when the supported list repeats a tag.
	ErrDuplicateLocale = errors.New("duplicate locale")
	// ErrEmptyLocale is returned when the supported list contains an empty tag.
	ErrEmptyLocale = errors.New("empty locale tag")
	// ErrDefaultNotSupported is returned when the default locale is not in the supported set.
	ErrDefaultNotSupported = errors.New("default locale is not a supported locale")
	// ErrLanguageTarget is returned when a language override maps to an unsupported locale.
	ErrLanguageTarget = errors.New("language mapped to unsupported locale")
)
