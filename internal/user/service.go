package user

import (
	"context"
	"errors"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
)

type RegisterRequest struct {
	Email       string
	Name        string
	PhoneNumber string
	Password    string
}

// AssignmentSource resolves a branch admin's assigned hotels. Loaded once at
// login so the assignment set rides in the token, not in per-request queries.
type AssignmentSource interface {
	AssignedHotelIDs(ctx context.Context, userID string) ([]string, error)
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	// Login authenticates and returns the user together with the principal
	// that should be embedded in the issued token.
	Login(ctx context.Context, email, password string) (*User, access.Principal, error)
	GetByID(ctx context.Context, id string) (*User, error)
	RoleOf(ctx context.Context, userID string) (access.Role, error)
	UpdateRole(ctx context.Context, p access.Principal, userID, role string) (*User, error)
}

type service struct {
	repo        Repository
	hasher      auth.PasswordHasher
	assignments AssignmentSource
}

func NewService(repo Repository, hasher auth.PasswordHasher, assignments AssignmentSource) Service {
	return &service{
		repo:        repo,
		hasher:      hasher,
		assignments: assignments,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        req.Email,
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		// Self-registration always yields a customer; admin roles are granted
		// explicitly by a super admin.
		Role: string(access.RoleCustomer),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, access.Principal, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, access.Principal{}, ErrInvalidCredentials
		}
		return nil, access.Principal{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, access.Principal{}, ErrInvalidCredentials
	}

	role, err := access.ParseRole(u.Role)
	if err != nil {
		return nil, access.Principal{}, err
	}

	p := access.Principal{UserID: u.ID, Role: role}
	if role == access.RoleBranchAdmin {
		ids, err := s.assignments.AssignedHotelIDs(ctx, u.ID)
		if err != nil {
			return nil, access.Principal{}, err
		}
		p.AssignedHotelIDs = ids
	}

	return u, p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) RoleOf(ctx context.Context, userID string) (access.Role, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return access.ParseRole(u.Role)
}

func (s *service) UpdateRole(ctx context.Context, p access.Principal, userID, role string) (*User, error) {
	if p.Role != access.RoleSuperAdmin {
		return nil, access.ErrAccessDenied
	}
	if _, err := access.ParseRole(role); err != nil {
		return nil, ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}
