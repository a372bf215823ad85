package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/notification"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	HotelName string    `json:"hotel_name"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		BookingID: n.BookingID,
		HotelName: n.HotelName,
		Kind:      n.Kind,
		Status:    n.Status,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
