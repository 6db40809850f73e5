package content

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ParseDocument splits source into front matter and markdown body.
// Files without a front matter block are accepted with an empty Meta.
func ParseDocument(source []byte) (Meta, []byte, error) {
	var meta Meta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return Meta{}, source, nil
		}
		return Meta{}, nil, fmt.Errorf("%w: %v", ErrFailedToParse, err)
	}

	return meta, body, nil
}
