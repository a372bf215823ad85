package review

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "review not found")
	ErrInvalidRating   = apperror.New(http.StatusBadRequest, "rating must be between 1 and 5")
	ErrAlreadyReviewed = apperror.New(http.StatusConflict, "you have already reviewed this hotel")
)

// Review is a customer's rating of a hotel, one per user per hotel.
type Review struct {
	ID        string
	UserID    string
	UserName  string
	HotelID   string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
