package notification

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "notification not found")

// Event kinds emitted by the booking core.
const (
	KindBookingCreated   = "booking_created"
	KindBookingModified  = "booking_modified"
	KindBookingCancelled = "booking_cancelled"
	KindStatusUpdated    = "booking_status_updated"
	KindPaymentCaptured  = "payment_captured"
	KindPaymentRefunded  = "payment_refunded"
)

// Event is the fire-and-forget payload handed to the sink. Delivery failures
// never fail or roll back the operation that produced them.
type Event struct {
	UserID    string
	BookingID string
	HotelName string
	Kind      string
	Status    string
}

// Notification is a persisted event addressed to a user.
type Notification struct {
	ID        string
	UserID    string
	BookingID string
	HotelName string
	Kind      string
	Status    string
	Read      bool
	CreatedAt time.Time
}
