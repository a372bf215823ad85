package favourite

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "favourite not found")
	ErrAlreadyFavourite = apperror.New(http.StatusConflict, "hotel is already in your favourites")
)

// Favourite marks a hotel a user has saved.
type Favourite struct {
	UserID    string
	HotelID   string
	HotelName string
	City      string
	Country   string
	CreatedAt time.Time
}
