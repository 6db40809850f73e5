package content_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chiclang/chicweb/pkg/content"
	"github.com/chiclang/chicweb/pkg/locale"
	"github.com/chiclang/chicweb/pkg/storage"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(body), 0o644))
}

// siteFiles is a small content tree: mission is translated to French only,
// the guide exists in English only.
var siteFiles = map[string]string{
	"docs/en-US/mission.md":     "---\ntitle: Mission\n---\n# Our mission\n",
	"docs/fr-FR/mission.md":     "---\ntitle: Mission (fr)\n---\n# Notre mission\n",
	"docs/en-US/guide/intro.md": "---\ntitle: Intro\ntags: [start]\n---\nHello.\n",
	"blog/en-US/launch.md":      "---\ntitle: Launch\ndate: 2025-03-01\n---\nWe launched.\n",
	"blog/en-US/alpha.md":       "---\ntitle: Alpha\ndate: 2025-01-10\n---\nAlpha.\n",
	"blog/en-US/beta.md":        "---\ntitle: Beta\ndate: 2025-01-10\n---\nBeta.\n",
	"blog/es-ES/launch.md":      "---\ntitle: Lanzamiento\ndate: 2025-03-01\n---\nLanzamos.\n",
	"blog/en-US/notes.txt":      "not a post",
}

var testDocs = []content.DocEntry{
	{Slug: []string{"mission"}, Title: "Mission", Section: "Overview"},
	{Slug: []string{"guide", "intro"}, Title: "Introduction", Section: "Guide"},
	{Slug: []string{"guide", "missing"}, Title: "Missing Page", Section: "Guide"},
}

func newStore(t *testing.T, files map[string]string) (*storage.LocalStorage, string) {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		writeFile(t, root, rel, body)
	}
	store, err := storage.NewLocalStorage(root)
	require.NoError(t, err)
	return store, root
}

func newResolver(t *testing.T, opts ...content.Option) *content.Resolver {
	t.Helper()
	store, _ := newStore(t, siteFiles)
	docs, err := content.NewDocsRegistry(testDocs)
	require.NoError(t, err)
	opts = append([]content.Option{content.WithDocs(docs)}, opts...)
	return content.NewResolver(store, locale.Default(), opts...)
}

// countingStore counts reads that reach the underlying store.
type countingStore struct {
	storage.Storage
	reads atomic.Int64
}

func (s *countingStore) Read(ctx context.Context, path string) ([]byte, error) {
	s.reads.Add(1)
	return s.Storage.Read(ctx, path)
}
