package room

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "room not found")
	ErrHotelNotFound = apperror.New(http.StatusNotFound, "hotel not found")
	ErrInvalidPrice  = apperror.New(http.StatusBadRequest, "price_per_night must be a non-negative amount with at most 2 decimal places")
	ErrInvalidState  = apperror.New(http.StatusBadRequest, "availability_status must be one of available, unavailable, maintenance")
)

// AvailabilityStatus is the operational state of a room, independent of
// booking-level capacity.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusUnavailable AvailabilityStatus = "unavailable"
	StatusMaintenance AvailabilityStatus = "maintenance"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusMaintenance:
		return true
	}
	return false
}

// Room is a bookable room type within a hotel. Units of the same room are
// fungible up to the configured capacity.
type Room struct {
	ID                 string
	HotelID            string
	HotelName          string
	RoomType           string
	PricePerNight      decimal.Decimal
	AvailabilityStatus AvailabilityStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Filter restricts room list queries.
type Filter struct {
	HotelID  string
	RoomType string
	Status   string
	MaxPrice *decimal.Decimal
	Limit    int
	Offset   int
}
