package portal

import (
	"context"
	"slices"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/store"
)

// readList loads a collection for a read path. Storage errors are logged and
// the defaults are served instead.
func readList[T any](ctx context.Context, s *Service, key string, defaults []T) []T {
	items, err := store.Load(ctx, s.backend, key, slices.Clone(defaults))
	if err != nil {
		s.log.Warn("failed to load collection, serving defaults",
			logger.String("collection", key),
			logger.Error(err))
	}
	return items
}

// loadList loads a collection for a write path. Storage errors are returned
// so a broken read never turns into a write of the defaults.
func loadList[T any](ctx context.Context, s *Service, key string, defaults []T) ([]T, error) {
	return store.Load(ctx, s.backend, key, slices.Clone(defaults))
}

// findFirst returns a copy of the first item whose key equals want, or nil.
func findFirst[T any](items []T, want string, keyOf func(T) string) *T {
	i := slices.IndexFunc(items, func(v T) bool { return keyOf(v) == want })
	if i < 0 {
		return nil
	}
	found := items[i]
	return &found
}

// updateByID applies patch to the record with id and persists the collection.
func updateByID[T any](ctx context.Context, s *Service, key string, defaults []T, id string, idOf func(T) string, patch func(T) T) (T, error) {
	var zero T

	items, err := loadList(ctx, s, key, defaults)
	if err != nil {
		return zero, err
	}

	i := slices.IndexFunc(items, func(v T) bool { return idOf(v) == id })
	if i < 0 {
		return zero, domain.ErrNotFound
	}

	items[i] = patch(items[i])
	if err := store.Save(ctx, s.backend, key, items); err != nil {
		return zero, err
	}
	return items[i], nil
}

// deleteByID removes every record with id. A missing id still rewrites the
// unchanged collection.
func deleteByID[T any](ctx context.Context, s *Service, key string, defaults []T, id string, idOf func(T) string) error {
	items, err := loadList(ctx, s, key, defaults)
	if err != nil {
		return err
	}

	items = slices.DeleteFunc(items, func(v T) bool { return idOf(v) == id })
	return store.Save(ctx, s.backend, key, items)
}

// appendRecord adds v at the end (or the head when first is set) and persists.
func appendRecord[T any](ctx context.Context, s *Service, key string, defaults []T, v T, first bool) error {
	items, err := loadList(ctx, s, key, defaults)
	if err != nil {
		return err
	}

	if first {
		items = append([]T{v}, items...)
	} else {
		items = append(items, v)
	}
	return store.Save(ctx, s.backend, key, items)
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
