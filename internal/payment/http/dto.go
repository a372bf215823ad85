package http

import (
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
)

type OutcomeRequest struct {
	Succeeded *bool  `json:"succeeded" binding:"required"`
	Reference string `json:"reference" binding:"max=128"`
}

type PaymentResponse struct {
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	TotalPrice    string `json:"total_price"`
}

func NewPaymentResponse(b *booking.Booking) PaymentResponse {
	return PaymentResponse{
		BookingID:     b.ID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		TotalPrice:    b.TotalPrice.StringFixed(2),
	}
}
