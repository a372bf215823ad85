package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
)

type CreateBookingRequest struct {
	HotelID        string `json:"hotel_id" binding:"required,uuid"`
	RoomID         string `json:"room_id" binding:"required,uuid"`
	CheckInDate    string `json:"check_in_date" binding:"required"`
	CheckOutDate   string `json:"check_out_date" binding:"required"`
	NumberOfGuests int    `json:"number_of_guests" binding:"omitempty,min=1,max=20"`
	NumberOfRooms  int    `json:"number_of_rooms" binding:"omitempty,min=1,max=10"`
}

type ModifyBookingRequest struct {
	CheckInDate    *string `json:"check_in_date"`
	CheckOutDate   *string `json:"check_out_date"`
	NumberOfGuests *int    `json:"number_of_guests"`
	NumberOfRooms  *int    `json:"number_of_rooms"`
	RoomID         *string `json:"room_id" binding:"omitempty,uuid"`
}

type UpdateStatusRequest struct {
	Status        *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,oneof=pending paid failed refunded"`
}

type ListBookingsRequest struct {
	request.ListParams
	UserID        string `form:"user_id" binding:"omitempty,uuid"`
	HotelID       string `form:"hotel_id" binding:"omitempty,uuid"`
	Status        string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=pending paid failed refunded"`
}

type MyBookingsRequest struct {
	request.ListParams
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
}

type BookingResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	HotelID        string    `json:"hotel_id"`
	HotelName      string    `json:"hotel_name"`
	RoomID         string    `json:"room_id"`
	RoomType       string    `json:"room_type"`
	CheckInDate    string    `json:"check_in_date"`
	CheckOutDate   string    `json:"check_out_date"`
	NumberOfGuests int       `json:"number_of_guests"`
	NumberOfRooms  int       `json:"number_of_rooms"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	TotalPrice     string    `json:"total_price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		UserName:       b.UserName,
		HotelID:        b.HotelID,
		HotelName:      b.HotelName,
		RoomID:         b.RoomID,
		RoomType:       b.RoomType,
		CheckInDate:    b.CheckIn.Format(booking.DateLayout),
		CheckOutDate:   b.CheckOut.Format(booking.DateLayout),
		NumberOfGuests: b.Guests,
		NumberOfRooms:  b.Rooms,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		TotalPrice:     b.TotalPrice.StringFixed(2),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

