package portal

import (
	"context"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/store"
)

func pageID(p domain.Page) string { return p.ID }

func (s *Service) PageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	all := readList(ctx, s, store.KeyPages, s.seed.Pages)
	return findFirst(all, slug, func(p domain.Page) string { return p.Slug }), nil
}

func (s *Service) AdminPages(ctx context.Context) ([]domain.Page, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return nonNil(readList(ctx, s, store.KeyPages, s.seed.Pages)), nil
}

func (s *Service) AdminPageByID(ctx context.Context, id string) (*domain.Page, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	all := readList(ctx, s, store.KeyPages, s.seed.Pages)
	return findFirst(all, id, pageID), nil
}

func (s *Service) CreatePage(ctx context.Context, in domain.PageInput) (domain.Page, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Page{}, err
	}

	now := s.now()
	p := domain.Page{
		ID:        domain.NewID(now),
		Title:     in.Title,
		Slug:      domain.Slugify(in.Title),
		Content:   in.Content,
		UpdatedAt: domain.Timestamp(now),
	}
	if err := appendRecord(ctx, s, store.KeyPages, s.seed.Pages, p, false); err != nil {
		return domain.Page{}, err
	}
	return p, nil
}

// UpdatePage merges patch into the page and refreshes UpdatedAt.
func (s *Service) UpdatePage(ctx context.Context, id string, patch domain.PagePatch) (domain.Page, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Page{}, err
	}
	now := domain.Timestamp(s.now())
	return updateByID(ctx, s, store.KeyPages, s.seed.Pages, id, pageID, func(p domain.Page) domain.Page {
		p = patch.Apply(p)
		p.UpdatedAt = now
		return p
	})
}

func (s *Service) DeletePage(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	return deleteByID(ctx, s, store.KeyPages, s.seed.Pages, id, pageID)
}
