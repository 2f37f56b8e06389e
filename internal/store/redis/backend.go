package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MrSnakeDoc/klub/internal/store"
	"github.com/redis/go-redis/v9"
)

// Backend stores collections as plain Redis strings without TTL.
type Backend struct {
	client *redis.Client
	prefix string
}

// NewBackend creates a Redis-backed store. prefix namespaces every key.
func NewBackend(client *redis.Client, prefix string) *Backend {
	return &Backend{
		client: client,
		prefix: prefix,
	}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, CollectionKey(b.prefix, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := b.client.Set(ctx, CollectionKey(b.prefix, key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, mapError(err))
	}
	return nil
}

func (b *Backend) SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	ok, err := b.client.SetNX(ctx, CollectionKey(b.prefix, key), value, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to setnx %s: %w", key, mapError(err))
	}
	return ok, nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, CollectionKey(b.prefix, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Collections reports which of the known collections exist. Only those keys
// are checked, so other data sharing the database is never listed.
func (b *Backend) Collections(ctx context.Context) ([]string, error) {
	keys := store.Keys()
	pipe := b.client.Pipeline()
	exists := make([]*redis.IntCmd, len(keys))
	for i, key := range keys {
		exists[i] = pipe.Exists(ctx, CollectionKey(b.prefix, key))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to check collections: %w", err)
	}

	names := make([]string, 0, len(keys))
	for i, cmd := range exists {
		if cmd.Val() > 0 {
			names = append(names, keys[i])
		}
	}
	sort.Strings(names)
	return names, nil
}

// mapError turns a maxmemory rejection into store.ErrQuotaExceeded.
func mapError(err error) error {
	if strings.HasPrefix(err.Error(), "OOM ") {
		return fmt.Errorf("%w: %v", store.ErrQuotaExceeded, err)
	}
	return err
}
