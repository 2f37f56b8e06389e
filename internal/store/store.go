// Package store persists named collections as whole JSON documents over a
// pluggable key/value backend.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a Backend when the key holds no value.
	ErrNotFound = errors.New("store: key not found")
	// ErrQuotaExceeded is returned by a Backend that refuses a write for lack of space.
	ErrQuotaExceeded = errors.New("store: quota exceeded")
)

// Backend is the storage substrate behind the record store.
// Values are opaque byte blobs replaced in full on every write.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetIfAbsent writes value only when key holds nothing and reports whether it wrote.
	SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Lister is implemented by backends that can enumerate stored collections.
type Lister interface {
	Collections(ctx context.Context) ([]string, error)
}

// Sizer is implemented by backends that account for their own footprint.
type Sizer interface {
	Len() int
	Size() int
}

// Collection keys.
const (
	KeyCategories = "mock_categories"
	KeyArticles   = "mock_articles"
	KeyMembers    = "mock_members"
	KeyPages      = "mock_pages"
	KeyBanner     = "mock_banner"
	KeyMerchants  = "mock_merchants"
)

// Keys lists every collection key in seeding order.
func Keys() []string {
	return []string{KeyCategories, KeyArticles, KeyMembers, KeyPages, KeyBanner, KeyMerchants}
}
