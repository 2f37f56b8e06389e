package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Load decodes the value stored under key into T.
// A missing key yields fallback and a nil error. Backend or decode failures
// yield fallback together with the wrapped error so callers can degrade.
func Load[T any](ctx context.Context, b Backend, key string, fallback T) (T, error) {
	raw, err := b.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fallback, nil
		}
		return fallback, fmt.Errorf("failed to load %s: %w", key, err)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return fallback, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return out, nil
}

// Save replaces the value under key with the JSON encoding of data.
func Save[T any](ctx context.Context, b Backend, key string, data T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := b.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// SeedIfAbsent writes initial under key only if nothing is stored there yet.
func SeedIfAbsent[T any](ctx context.Context, b Backend, key string, initial T) (bool, error) {
	raw, err := json.Marshal(initial)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	wrote, err := b.SetIfAbsent(ctx, key, raw)
	if err != nil {
		return false, fmt.Errorf("failed to seed %s: %w", key, err)
	}
	return wrote, nil
}
