package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML messages")
	ErrInvalidCatalog    = errors.New("invalid message catalog")
	ErrFailedToLoad      = errors.New("failed to load message catalog")
)
