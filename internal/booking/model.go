package booking

import (
	"net/http"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound      = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomHotelMismatch = apperror.New(http.StatusBadRequest, "room does not belong to the given hotel")
	ErrRoomUnavailable   = apperror.New(http.StatusBadRequest, "room is not available for booking")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange  = apperror.New(http.StatusBadRequest, "check-out date must be after check-in date")
	ErrCheckInPast       = apperror.New(http.StatusBadRequest, "check-in date cannot be in the past")
	ErrCheckInTooFar     = apperror.New(http.StatusBadRequest, "check-in date is too far in the future")
	ErrInvalidGuests     = apperror.New(http.StatusBadRequest, "number_of_guests must be between 1 and 20")
	ErrInvalidRoomCount  = apperror.New(http.StatusBadRequest, "number_of_rooms must be between 1 and 10")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidPayStatus  = apperror.New(http.StatusBadRequest, "invalid payment status")
	ErrAlreadyCancelled  = apperror.New(http.StatusBadRequest, "booking is already cancelled")
	ErrTerminal          = apperror.New(http.StatusBadRequest, "cancelled or completed bookings cannot be changed")
	ErrNotRefundable     = apperror.New(http.StatusBadRequest, "only paid bookings can be refunded")
	ErrNotCapturable     = apperror.New(http.StatusBadRequest, "payment has already been settled for this booking")
)

const (
	MinGuests = 1
	MaxGuests = 20
	MinRooms  = 1
	MaxRooms  = 10
)

// Booking is a reservation of one or more fungible units of a room over a
// half-open date range. Joined display names are populated on reads.
type Booking struct {
	ID            string
	UserID        string
	UserName      string
	HotelID       string
	HotelName     string
	RoomID        string
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	Rooms         int
	Status        Status
	PaymentStatus PaymentStatus
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Range returns the booking's stay as a DateRange without revalidation.
func (b *Booking) Range() DateRange {
	return DateRange{start: b.CheckIn, end: b.CheckOut}
}

// Filter restricts booking list queries. Scope carries the caller's
// access-scope predicate and composes with the other filters.
type Filter struct {
	UserID        string
	HotelID       string
	RoomID        string
	Status        string
	PaymentStatus string
	Scope         squirrel.Sqlizer
	Limit         int
	Offset        int
}
