package seed

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/klub/internal/store"
)

// Result tells which collections a run wrote and which it left alone.
type Result struct {
	Written []string `json:"written"`
	Kept    []string `json:"kept"`
}

// Apply writes every collection of data into b. Without reset only missing
// collections are written; with reset every collection is overwritten.
func Apply(ctx context.Context, b store.Backend, data Data, reset bool) (Result, error) {
	steps := []struct {
		key   string
		value any
	}{
		{store.KeyCategories, data.Categories},
		{store.KeyArticles, data.Articles},
		{store.KeyMembers, data.Members},
		{store.KeyPages, data.Pages},
		{store.KeyBanner, data.Banner},
		{store.KeyMerchants, data.Merchants},
	}

	var res Result
	for _, s := range steps {
		if reset {
			if err := store.Save(ctx, b, s.key, s.value); err != nil {
				return res, fmt.Errorf("seed reset: %w", err)
			}
			res.Written = append(res.Written, s.key)
			continue
		}

		wrote, err := store.SeedIfAbsent(ctx, b, s.key, s.value)
		if err != nil {
			return res, fmt.Errorf("seed: %w", err)
		}
		if wrote {
			res.Written = append(res.Written, s.key)
		} else {
			res.Kept = append(res.Kept, s.key)
		}
	}
	return res, nil
}

// Purge deletes every collection. Reads then serve the seed defaults until
// the next seeding run writes them back.
func Purge(ctx context.Context, b store.Backend) error {
	for _, key := range store.Keys() {
		if err := b.Delete(ctx, key); err != nil {
			return fmt.Errorf("seed purge %s: %w", key, err)
		}
	}
	return nil
}
