package portal

import (
	"context"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/store"
)

func merchantID(m domain.Merchant) string { return m.ID }

// Merchants lists the partner merchants for the public site.
func (s *Service) Merchants(ctx context.Context) ([]domain.Merchant, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return nonNil(readList(ctx, s, store.KeyMerchants, s.seed.Merchants)), nil
}

func (s *Service) AdminMerchants(ctx context.Context) ([]domain.Merchant, error) {
	return s.Merchants(ctx)
}

func (s *Service) AdminMerchantByID(ctx context.Context, id string) (*domain.Merchant, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	all := readList(ctx, s, store.KeyMerchants, s.seed.Merchants)
	return findFirst(all, id, merchantID), nil
}

func (s *Service) CreateMerchant(ctx context.Context, in domain.MerchantInput) (domain.Merchant, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Merchant{}, err
	}

	m := domain.Merchant{
		ID:           domain.NewID(s.now()),
		Name:         in.Name,
		Category:     in.Category,
		LogoURL:      in.LogoURL,
		Address:      in.Address,
		DiscountInfo: in.DiscountInfo,
	}
	if err := appendRecord(ctx, s, store.KeyMerchants, s.seed.Merchants, m, false); err != nil {
		return domain.Merchant{}, err
	}
	return m, nil
}

func (s *Service) UpdateMerchant(ctx context.Context, id string, patch domain.MerchantPatch) (domain.Merchant, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Merchant{}, err
	}
	return updateByID(ctx, s, store.KeyMerchants, s.seed.Merchants, id, merchantID, patch.Apply)
}

func (s *Service) DeleteMerchant(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	return deleteByID(ctx, s, store.KeyMerchants, s.seed.Merchants, id, merchantID)
}
