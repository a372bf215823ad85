package review

import (
	"context"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
)

type CreateRequest struct {
	HotelID string
	Rating  int
	Comment string
}

type Service interface {
	Create(ctx context.Context, p access.Principal, req CreateRequest) (*Review, error)
	ListByHotel(ctx context.Context, hotelID string, limit, offset int) ([]*Review, int, error)
	Delete(ctx context.Context, p access.Principal, id string) error
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{repo: repo, hotelService: hotelService}
}

func (s *service) Create(ctx context.Context, p access.Principal, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.hotelService.GetByID(ctx, req.HotelID); err != nil {
		return nil, err
	}

	rv := &Review{
		UserID:  p.UserID,
		HotelID: req.HotelID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) ListByHotel(ctx context.Context, hotelID string, limit, offset int) ([]*Review, int, error) {
	if _, err := s.hotelService.GetByID(ctx, hotelID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByHotel(ctx, hotelID, limit, offset)
}

func (s *service) Delete(ctx context.Context, p access.Principal, id string) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Authors delete their own reviews; admins need scope over the hotel.
	if rv.UserID != p.UserID {
		if !p.Role.IsAdmin() || !p.CanAccessHotel(rv.HotelID) {
			return access.ErrAccessDenied
		}
	}

	return s.repo.Delete(ctx, id)
}
