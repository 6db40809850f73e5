package i18n

import (
	"context"
	"errors"

	"github.com/chiclang/chicweb/pkg/storage"
)

// OverridesPath is the optional messages file inside the content store.
const OverridesPath = "i18n.yaml"

// Load builds a catalog from the built-in messages and merges OverridesPath
// from store when it exists.
func Load(ctx context.Context, store storage.Storage, defaultLocale string, opts ...Option) (*Catalog, error) {
	c, err := NewCatalog(defaultLocale, opts...)
	if err != nil {
		return nil, err
	}

	data, err := store.Read(ctx, OverridesPath)
	switch {
	case errors.Is(err, storage.ErrFileNotFound):
		return c, nil
	case err != nil:
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	if err := c.Merge(data); err != nil {
		return nil, err
	}
	return c, nil
}
