// Package payment is the boundary for the external payment collaborator.
// The platform never talks to a card network itself; the collaborator calls
// back with the outcome of a capture or refund attempt and this package
// applies it to the booking.
package payment

import (
	"context"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
)

type Service interface {
	Capture(ctx context.Context, p access.Principal, bookingID string, succeeded bool) (*booking.Booking, error)
	Refund(ctx context.Context, p access.Principal, bookingID string, succeeded bool) (*booking.Booking, error)
}

type service struct {
	bookings booking.Service
}

func NewService(bookings booking.Service) Service {
	return &service{bookings: bookings}
}

func (s *service) Capture(ctx context.Context, p access.Principal, bookingID string, succeeded bool) (*booking.Booking, error) {
	return s.bookings.ApplyCapture(ctx, p, bookingID, succeeded)
}

func (s *service) Refund(ctx context.Context, p access.Principal, bookingID string, succeeded bool) (*booking.Booking, error) {
	return s.bookings.ApplyRefund(ctx, p, bookingID, succeeded)
}
