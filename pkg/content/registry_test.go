package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiclang/chicweb/pkg/content"
)

const manifestYAML = `
sections:
  - title: Overview
    pages:
      - slug: mission
        title: Mission
  - title: Language
    pages:
      - slug: /language/syntax/
        title: Syntax
`

func TestParseDocsManifest(t *testing.T) {
	t.Parallel()

	reg, err := content.ParseDocsManifest([]byte(manifestYAML))
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	entries := reg.Entries()
	assert.Equal(t, content.DocEntry{Slug: []string{"mission"}, Title: "Mission", Section: "Overview"}, entries[0])
	assert.Equal(t, []string{"language", "syntax"}, entries[1].Slug)
	assert.Equal(t, "language/syntax", entries[1].Key())

	e, ok := reg.Lookup([]string{"language", "syntax"})
	require.True(t, ok)
	assert.Equal(t, "Language", e.Section)

	_, ok = reg.Lookup([]string{"language"})
	assert.False(t, ok)
}

func TestParseDocsManifestInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not yaml":       "sections: [",
		"no pages":       "sections: []",
		"traversal slug": "sections:\n  - title: x\n    pages:\n      - slug: ../etc\n",
		"duplicate":      "sections:\n  - title: x\n    pages:\n      - slug: a\n      - slug: a\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := content.ParseDocsManifest([]byte(doc))
			assert.ErrorIs(t, err, content.ErrInvalidManifest)
		})
	}
}

func TestLoadDocsManifest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, _ := newStore(t, map[string]string{content.DocsManifestPath: manifestYAML})
	reg, err := content.LoadDocsManifest(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	empty, _ := newStore(t, map[string]string{"docs/en-US/mission.md": "x"})
	reg, err = content.LoadDocsManifest(ctx, empty)
	require.NoError(t, err)
	assert.Equal(t, content.DefaultDocs().Len(), reg.Len())
}

func TestDocsRegistryEntriesAreCopies(t *testing.T) {
	t.Parallel()
	reg := content.DefaultDocs()

	entries := reg.Entries()
	entries[0].Slug[0] = "changed"

	assert.NotEqual(t, "changed", reg.Entries()[0].Slug[0])
}
