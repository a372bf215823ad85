package hotel

import (
	"context"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
)

type CreateRequest struct {
	Name       string
	Address    string
	City       string
	Country    string
	StarRating *int
	Amenities  []string
}

type UpdateRequest struct {
	Name       *string
	Address    *string
	City       *string
	Country    *string
	StarRating *int
	Amenities  []string
}

// UserDirectory is the slice of the user module the hotel module needs when
// validating admin assignments.
type UserDirectory interface {
	RoleOf(ctx context.Context, userID string) (access.Role, error)
}

type Service interface {
	Create(ctx context.Context, p access.Principal, req CreateRequest) (*Hotel, error)
	GetByID(ctx context.Context, id string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	Update(ctx context.Context, p access.Principal, id string, req UpdateRequest) (*Hotel, error)
	Delete(ctx context.Context, p access.Principal, id string) error

	AssignAdmin(ctx context.Context, p access.Principal, hotelID, userID string) error
	UnassignAdmin(ctx context.Context, p access.Principal, hotelID, userID string) error
	ListAdmins(ctx context.Context, p access.Principal, hotelID string) ([]AdminRef, error)
	AssignedHotelIDs(ctx context.Context, userID string) ([]string, error)
}

type service struct {
	repo  Repository
	users UserDirectory
}

func NewService(repo Repository, users UserDirectory) Service {
	return &service{repo: repo, users: users}
}

func validStarRating(r *int) bool {
	return r == nil || (*r >= 1 && *r <= 5)
}

func (s *service) Create(ctx context.Context, p access.Principal, req CreateRequest) (*Hotel, error) {
	if p.Role != access.RoleSuperAdmin {
		return nil, access.ErrAccessDenied
	}
	if !validStarRating(req.StarRating) {
		return nil, ErrInvalidStarRating
	}

	h := &Hotel{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		StarRating: req.StarRating,
		Amenities:  req.Amenities,
	}
	if h.Amenities == nil {
		h.Amenities = []string{}
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, p access.Principal, id string, req UpdateRequest) (*Hotel, error) {
	// Hotel-scoped: authorization runs before the existence check.
	if err := p.RequireHotelAccess(id); err != nil {
		return nil, err
	}

	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Address != nil {
		h.Address = *req.Address
	}
	if req.City != nil {
		h.City = *req.City
	}
	if req.Country != nil {
		h.Country = *req.Country
	}
	if req.StarRating != nil {
		if !validStarRating(req.StarRating) {
			return nil, ErrInvalidStarRating
		}
		h.StarRating = req.StarRating
	}
	if req.Amenities != nil {
		h.Amenities = req.Amenities
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) Delete(ctx context.Context, p access.Principal, id string) error {
	if p.Role != access.RoleSuperAdmin {
		return access.ErrAccessDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) AssignAdmin(ctx context.Context, p access.Principal, hotelID, userID string) error {
	if p.Role != access.RoleSuperAdmin {
		return access.ErrAccessDenied
	}
	if _, err := s.repo.GetByID(ctx, hotelID); err != nil {
		return err
	}

	role, err := s.users.RoleOf(ctx, userID)
	if err != nil {
		return err
	}
	if role != access.RoleBranchAdmin {
		return ErrNotBranchAdmin
	}

	return s.repo.AssignAdmin(ctx, hotelID, userID)
}

func (s *service) UnassignAdmin(ctx context.Context, p access.Principal, hotelID, userID string) error {
	if p.Role != access.RoleSuperAdmin {
		return access.ErrAccessDenied
	}
	return s.repo.UnassignAdmin(ctx, hotelID, userID)
}

func (s *service) ListAdmins(ctx context.Context, p access.Principal, hotelID string) ([]AdminRef, error) {
	if err := p.RequireHotelAccess(hotelID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.repo.ListAdmins(ctx, hotelID)
}

func (s *service) AssignedHotelIDs(ctx context.Context, userID string) ([]string, error) {
	return s.repo.AssignedHotelIDs(ctx, userID)
}
