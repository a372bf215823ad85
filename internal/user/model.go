package user

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailTaken         = apperror.New(http.StatusConflict, "email already in use")
	ErrPhoneTaken         = apperror.New(http.StatusConflict, "phone number already in use")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid role")
)

// User is an account holder. Role is stored as text and resolved through the
// canonical access.Role enumeration; legacy "admin" rows parse as super scope.
type User struct {
	ID           string
	Email        string
	Name         string
	PhoneNumber  string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
