package redis

import (
	"context"
	"testing"

	"github.com/MrSnakeDoc/klub/internal/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, prefix string) (*Backend, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewBackend(client, prefix), mr
}

func TestBackendGetMissing(t *testing.T) {
	b, _ := newTestBackend(t, "")

	_, err := b.Get(context.Background(), store.KeyArticles)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBackendSetGetWithPrefix(t *testing.T) {
	b, mr := newTestBackend(t, "klub:")
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, store.KeyBanner, []byte(`{"text":"hi"}`)))

	raw, err := mr.Get("klub:" + store.KeyBanner)
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hi"}`, raw)
	assert.Zero(t, mr.TTL("klub:"+store.KeyBanner), "collections must not expire")

	got, err := b.Get(ctx, store.KeyBanner)
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hi"}`, string(got))
}

func TestBackendSetIfAbsent(t *testing.T) {
	b, _ := newTestBackend(t, "")
	ctx := context.Background()

	wrote, err := b.SetIfAbsent(ctx, "k", []byte("first"))
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = b.SetIfAbsent(ctx, "k", []byte("second"))
	require.NoError(t, err)
	assert.False(t, wrote)

	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))
}

func TestBackendDelete(t *testing.T) {
	b, mr := newTestBackend(t, "p:")
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "k", []byte("v")))
	require.NoError(t, b.Delete(ctx, "k"))
	assert.False(t, mr.Exists("p:k"))

	// missing key is fine
	require.NoError(t, b.Delete(ctx, "k"))
}

func TestBackendCollections(t *testing.T) {
	b, mr := newTestBackend(t, "klub:")
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, store.KeyPages, []byte("[]")))
	require.NoError(t, b.Set(ctx, store.KeyArticles, []byte("[]")))
	require.NoError(t, mr.Set("other:key", "x"))

	names, err := b.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{store.KeyArticles, store.KeyPages}, names)
}

func TestBackendCollectionsIgnoresForeignKeys(t *testing.T) {
	b, mr := newTestBackend(t, "")
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, store.KeyBanner, []byte("{}")))
	for _, key := range []string{"session:1", "queue", "mock_banner_old", "cache:mock_pages"} {
		require.NoError(t, mr.Set(key, "x"))
	}

	names, err := b.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{store.KeyBanner}, names)
}

func TestBackendPing(t *testing.T) {
	b, mr := newTestBackend(t, "")

	require.NoError(t, b.Ping(context.Background()))

	mr.Close()
	assert.Error(t, b.Ping(context.Background()))
}
