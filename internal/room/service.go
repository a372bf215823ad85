package room

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
)

type CreateRequest struct {
	HotelID            string
	RoomType           string
	PricePerNight      decimal.Decimal
	AvailabilityStatus string
}

type UpdateRequest struct {
	RoomType           *string
	PricePerNight      *decimal.Decimal
	AvailabilityStatus *string
}

type Service interface {
	Create(ctx context.Context, p access.Principal, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, p access.Principal, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, p access.Principal, id string) error
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{repo: repo, hotelService: hotelService}
}

// validPrice rejects negative rates and sub-cent precision.
func validPrice(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Exponent() >= -2
}

func (s *service) Create(ctx context.Context, p access.Principal, req CreateRequest) (*Room, error) {
	// Hotel-scoped: authorization runs before the existence check.
	if err := p.RequireHotelAccess(req.HotelID); err != nil {
		return nil, err
	}
	if _, err := s.hotelService.GetByID(ctx, req.HotelID); err != nil {
		return nil, err
	}

	if !validPrice(req.PricePerNight) {
		return nil, ErrInvalidPrice
	}

	status := AvailabilityStatus(req.AvailabilityStatus)
	if req.AvailabilityStatus == "" {
		status = StatusAvailable
	}
	if !status.Valid() {
		return nil, ErrInvalidState
	}

	rm := &Room{
		HotelID:            req.HotelID,
		RoomType:           req.RoomType,
		PricePerNight:      req.PricePerNight,
		AvailabilityStatus: status,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, p access.Principal, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.RequireHotelAccess(rm.HotelID); err != nil {
		return nil, err
	}

	if req.RoomType != nil {
		rm.RoomType = *req.RoomType
	}
	if req.PricePerNight != nil {
		if !validPrice(*req.PricePerNight) {
			return nil, ErrInvalidPrice
		}
		rm.PricePerNight = *req.PricePerNight
	}
	if req.AvailabilityStatus != nil {
		status := AvailabilityStatus(*req.AvailabilityStatus)
		if !status.Valid() {
			return nil, ErrInvalidState
		}
		rm.AvailabilityStatus = status
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Delete(ctx context.Context, p access.Principal, id string) error {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := p.RequireHotelAccess(rm.HotelID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
