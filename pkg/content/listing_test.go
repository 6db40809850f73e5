package content_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiclang/chicweb/pkg/content"
	"github.com/chiclang/chicweb/pkg/locale"
	"github.com/chiclang/chicweb/pkg/storage"
)

func TestListDocs(t *testing.T) {
	t.Parallel()
	r := newResolver(t, content.WithConcurrency(2))

	pages, err := r.ListDocs(context.Background(), "fr-FR")
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Equal(t, []string{"mission"}, pages[0].Slug)
	assert.Equal(t, "Mission (fr)", pages[0].Meta.Title)
	assert.False(t, pages[0].IsFallback)

	assert.Equal(t, []string{"guide", "intro"}, pages[1].Slug)
	assert.True(t, pages[1].IsFallback)
	assert.Equal(t, "en-US", pages[1].SourceLocale)
	assert.Equal(t, "Guide", pages[1].Section)

	assert.True(t, pages[2].Placeholder)
	assert.False(t, pages[2].IsFallback)
	assert.Equal(t, "fr-FR", pages[2].SourceLocale)
	assert.Equal(t, "Missing Page", pages[2].Meta.Title)
	assert.Equal(t, "/docs/guide/missing", pages[2].Path())
}

func TestListDocsUnsupportedLocale(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	_, err := r.ListDocs(context.Background(), "xx-YY")
	assert.ErrorIs(t, err, content.ErrUnsupportedLocale)
}

func TestListBlogPosts(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	posts, err := r.ListBlogPosts(context.Background(), "es-ES")
	require.NoError(t, err)

	var slugs []string
	for _, p := range posts {
		slugs = append(slugs, p.Key())
	}
	// Newest first, same-day posts by slug.
	assert.Equal(t, []string{"launch", "alpha", "beta"}, slugs)

	assert.Equal(t, "Lanzamiento", posts[0].Meta.Title)
	assert.False(t, posts[0].IsFallback)
	assert.True(t, posts[1].IsFallback)
	assert.True(t, posts[2].IsFallback)
}

func TestListBlogPostsEmpty(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, map[string]string{"docs/en-US/mission.md": "x"})
	r := content.NewResolver(store, locale.Default())

	posts, err := r.ListBlogPosts(context.Background(), "fr-FR")
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
}

func TestListBlogPostsOnlyDefaultLocaleDefinesPosts(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, map[string]string{
		"blog/en-US/one.md":      "---\ntitle: One\n---\n",
		"blog/fr-FR/fr-only.md":  "---\ntitle: Seulement\n---\n",
		"blog/en-US/nested/x.md": "ignored",
	})
	r := content.NewResolver(store, locale.Default())

	posts, err := r.ListBlogPosts(context.Background(), "fr-FR")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "one", posts[0].Key())
}

type failingStore struct {
	storage.Storage
}

func (failingStore) Read(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestListingsPropagateStoreFailures(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, siteFiles)
	r := content.NewResolver(failingStore{Storage: store}, locale.Default())
	ctx := context.Background()

	_, err := r.ListDocs(ctx, "en-US")
	assert.ErrorIs(t, err, content.ErrFailedToList)
	assert.ErrorIs(t, err, content.ErrFailedToLoad)

	_, err = r.ListBlogPosts(ctx, "en-US")
	assert.ErrorIs(t, err, content.ErrFailedToList)
}

func TestAlternates(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	alts := r.Alternates(context.Background(), content.KindDoc, []string{"mission"})
	require.Len(t, alts, len(locale.BuiltinLocales))

	byLocale := make(map[string]content.Alternate, len(alts))
	for _, a := range alts {
		byLocale[a.Locale] = a
	}

	assert.True(t, byLocale["en-US"].Translated)
	assert.True(t, byLocale["fr-FR"].Translated)
	assert.False(t, byLocale["ja-JP"].Translated)
	assert.Equal(t, "/fr-FR/docs/mission", byLocale["fr-FR"].Href)
	assert.Equal(t, locale.DisplayName("fr-FR"), byLocale["fr-FR"].Name)

	posts := r.Alternates(context.Background(), content.KindBlog, []string{"launch"})
	assert.Equal(t, "/en-US/blog/launch", posts[0].Href)
	assert.True(t, posts[0].Translated)
}
