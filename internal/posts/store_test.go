package posts

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "posts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)

	// reopening applies the schema again without error
	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateDefaults(t *testing.T) {
	s := openTestStore(t)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	p, err := s.Create(context.Background(), NewPost{Title: "Halo Dunia", Content: "isi"})
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "halo-dunia", p.Slug)
	assert.Equal(t, "Admin", p.Author)
	assert.Equal(t, int64(1700000000000), p.CreatedAt)
}

func TestCreateKeepsExplicitFields(t *testing.T) {
	s := openTestStore(t)

	p, err := s.Create(context.Background(), NewPost{Title: "T", Slug: "custom", Author: "Budi", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, "custom", p.Slug)
	assert.Equal(t, "Budi", p.Author)
}

func TestCreateValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, NewPost{Content: "c"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.Create(ctx, NewPost{Title: "t", Content: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.UnixMilli(1700000000000)
	for i, title := range []string{"pertama", "kedua", "ketiga"} {
		at := base.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return at }
		_, err := s.Create(ctx, NewPost{Title: title, Content: "isi " + title})
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "ketiga", list[0].Title)
	assert.Equal(t, "pertama", list[2].Title)
	assert.Empty(t, list[0].Content, "list omits content")
}

func TestListEmpty(t *testing.T) {
	s := openTestStore(t)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Create(ctx, NewPost{Title: "hapus", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, p.ID))
	assert.ErrorIs(t, s.Delete(ctx, p.ID), domain.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 9999), domain.ErrNotFound)
}
