package portal

import (
	"context"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/store"
)

func categoryID(c domain.Category) string { return c.ID }

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return nonNil(readList(ctx, s, store.KeyCategories, s.seed.Categories)), nil
}

func (s *Service) CategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	all := readList(ctx, s, store.KeyCategories, s.seed.Categories)
	return findFirst(all, id, categoryID), nil
}

func (s *Service) CreateCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Category{}, err
	}

	c := domain.Category{ID: domain.NewID(s.now()), Name: in.Name}
	if err := appendRecord(ctx, s, store.KeyCategories, s.seed.Categories, c, false); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

// UpdateCategory renames a category. Articles keep the copy they embedded.
func (s *Service) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Category{}, err
	}
	return updateByID(ctx, s, store.KeyCategories, s.seed.Categories, id, categoryID, patch.Apply)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	return deleteByID(ctx, s, store.KeyCategories, s.seed.Categories, id, categoryID)
}
