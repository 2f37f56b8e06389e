package portal

import (
	"context"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/store"
)

func (s *Service) Banner(ctx context.Context) (domain.Banner, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Banner{}, err
	}
	b, err := store.Load(ctx, s.backend, store.KeyBanner, s.seed.Banner)
	if err != nil {
		s.log.Warn("failed to load banner, serving default",
			logger.Error(err))
	}
	return b, nil
}

// UpdateBanner replaces the banner wholesale.
func (s *Service) UpdateBanner(ctx context.Context, b domain.Banner) (domain.Banner, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Banner{}, err
	}
	if err := store.Save(ctx, s.backend, store.KeyBanner, b); err != nil {
		return domain.Banner{}, err
	}
	return b, nil
}

// Login returns a session for the configured admin, or nil when the
// credentials do not match.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	if email != s.creds.Email || password != s.creds.Password {
		return nil, nil
	}
	return &domain.Session{
		User: domain.AdminUser{
			ID:    "admin1",
			Email: s.creds.Email,
			Name:  "Admin Utama",
		},
		Token: s.creds.Token,
	}, nil
}

func (s *Service) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	if err := s.delay(ctx); err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats{
		Articles:  len(readList(ctx, s, store.KeyArticles, s.seed.Articles)),
		Members:   len(readList(ctx, s, store.KeyMembers, s.seed.Members)),
		Pages:     len(readList(ctx, s, store.KeyPages, s.seed.Pages)),
		Merchants: len(readList(ctx, s, store.KeyMerchants, s.seed.Merchants)),
	}, nil
}
