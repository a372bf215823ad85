package favourite

import (
	"context"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
)

type Service interface {
	Add(ctx context.Context, p access.Principal, hotelID string) error
	Remove(ctx context.Context, p access.Principal, hotelID string) error
	ListMine(ctx context.Context, p access.Principal, limit, offset int) ([]*Favourite, int, error)
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{repo: repo, hotelService: hotelService}
}

func (s *service) Add(ctx context.Context, p access.Principal, hotelID string) error {
	if _, err := s.hotelService.GetByID(ctx, hotelID); err != nil {
		return err
	}
	return s.repo.Add(ctx, p.UserID, hotelID)
}

func (s *service) Remove(ctx context.Context, p access.Principal, hotelID string) error {
	return s.repo.Remove(ctx, p.UserID, hotelID)
}

func (s *service) ListMine(ctx context.Context, p access.Principal, limit, offset int) ([]*Favourite, int, error) {
	return s.repo.ListByUser(ctx, p.UserID, limit, offset)
}
