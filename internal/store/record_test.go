package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MrSnakeDoc/klub/internal/store"
	"github.com/MrSnakeDoc/klub/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// failing is a backend whose every call returns err.
type failing struct{ err error }

func (f failing) Get(context.Context, string) ([]byte, error)               { return nil, f.err }
func (f failing) Set(context.Context, string, []byte) error                 { return f.err }
func (f failing) SetIfAbsent(context.Context, string, []byte) (bool, error) { return false, f.err }
func (f failing) Delete(context.Context, string) error                      { return f.err }
func (f failing) Ping(context.Context) error                                { return f.err }

func TestLoadMissingReturnsFallback(t *testing.T) {
	b := memory.New(0)
	fallback := []item{{ID: "1", Name: "seed"}}

	got, err := store.Load(context.Background(), b, "things", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)
}

func TestSaveThenLoad(t *testing.T) {
	b := memory.New(0)
	ctx := context.Background()
	data := []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}

	require.NoError(t, store.Save(ctx, b, "things", data))

	got, err := store.Load(ctx, b, "things", []item{})
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLoadCorruptReturnsFallbackAndError(t *testing.T) {
	b := memory.New(0)
	ctx := context.Background()
	require.NoError(t, b.Set(ctx, "things", []byte("{not json")))

	fallback := []item{{ID: "seed"}}
	got, err := store.Load(ctx, b, "things", fallback)
	assert.Error(t, err)
	assert.Equal(t, fallback, got)
}

func TestLoadBackendFailure(t *testing.T) {
	boom := errors.New("boom")
	fallback := item{ID: "x"}

	got, err := store.Load(context.Background(), failing{err: boom}, "banner", fallback)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, fallback, got)
}

func TestSaveQuotaExceeded(t *testing.T) {
	b := memory.New(16)

	err := store.Save(context.Background(), b, "things", []item{{ID: "1", Name: "far too long for the quota"}})
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)
}

func TestSaveBackendFailure(t *testing.T) {
	boom := errors.New("boom")

	err := store.Save(context.Background(), failing{err: boom}, "things", []item{})
	assert.ErrorIs(t, err, boom)
}

func TestSeedIfAbsentNeverOverwrites(t *testing.T) {
	b := memory.New(0)
	ctx := context.Background()

	wrote, err := store.SeedIfAbsent(ctx, b, "things", []item{{ID: "seed"}})
	require.NoError(t, err)
	assert.True(t, wrote)

	require.NoError(t, store.Save(ctx, b, "things", []item{{ID: "edited"}}))

	wrote, err = store.SeedIfAbsent(ctx, b, "things", []item{{ID: "seed"}})
	require.NoError(t, err)
	assert.False(t, wrote)

	got, err := store.Load(ctx, b, "things", []item{})
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "edited"}}, got)
}

func TestKeysCoverEveryCollection(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"mock_categories", "mock_articles", "mock_members",
		"mock_pages", "mock_banner", "mock_merchants",
	}, store.Keys())
}
