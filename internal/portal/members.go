package portal

import (
	"context"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/store"
)

func memberID(m domain.Member) string { return m.ID }

// PublicMembers is the member directory shown on the public site.
func (s *Service) PublicMembers(ctx context.Context) ([]domain.Member, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return nonNil(readList(ctx, s, store.KeyMembers, s.seed.Members)), nil
}

// RegisterMember appends a new member stamped with the registration time.
func (s *Service) RegisterMember(ctx context.Context, in domain.MemberInput) (domain.Member, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Member{}, err
	}

	now := s.now()
	m := domain.Member{
		ID:           domain.NewID(now),
		Email:        in.Email,
		FullName:     in.FullName,
		Nickname:     in.Nickname,
		Chapter:      in.Chapter,
		BirthPlace:   in.BirthPlace,
		BirthDate:    in.BirthDate,
		Address:      in.Address,
		Phone:        in.Phone,
		Car:          in.Car,
		CarYear:      in.CarYear,
		CarColor:     in.CarColor,
		LicensePlate: in.LicensePlate,
		ShirtSize:    in.ShirtSize,
		JoinReason:   in.JoinReason,
		RegisteredAt: domain.Timestamp(now),
	}
	if err := appendRecord(ctx, s, store.KeyMembers, s.seed.Members, m, false); err != nil {
		return domain.Member{}, err
	}
	return m, nil
}

func (s *Service) AdminMembers(ctx context.Context) ([]domain.Member, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return nonNil(readList(ctx, s, store.KeyMembers, s.seed.Members)), nil
}

func (s *Service) AdminMemberByID(ctx context.Context, id string) (*domain.Member, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	all := readList(ctx, s, store.KeyMembers, s.seed.Members)
	return findFirst(all, id, memberID), nil
}

func (s *Service) UpdateMember(ctx context.Context, id string, patch domain.MemberPatch) (domain.Member, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Member{}, err
	}
	return updateByID(ctx, s, store.KeyMembers, s.seed.Members, id, memberID, patch.Apply)
}

func (s *Service) DeleteMember(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	return deleteByID(ctx, s, store.KeyMembers, s.seed.Members, id, memberID)
}
