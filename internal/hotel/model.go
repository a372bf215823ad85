package hotel

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "hotel not found")
	ErrInvalidStarRating  = apperror.New(http.StatusBadRequest, "star_rating must be between 1 and 5")
	ErrAlreadyAssigned    = apperror.New(http.StatusConflict, "user is already an admin of this hotel")
	ErrAssignmentNotFound = apperror.New(http.StatusNotFound, "hotel admin assignment not found")
	ErrNotBranchAdmin     = apperror.New(http.StatusBadRequest, "user is not a branch admin")
)

// Hotel is a bookable property owning rooms and referenced by bookings,
// reviews and favourites.
type Hotel struct {
	ID         string
	Name       string
	Address    string
	City       string
	Country    string
	StarRating *int
	Amenities  []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter restricts hotel list queries.
type Filter struct {
	City    string
	Country string
	MinStar int
	Limit   int
	Offset  int
}

// AdminRef is a branch admin assigned to a hotel.
type AdminRef struct {
	UserID string
	Name   string
	Email  string
}
