package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

type CreateRoomRequest struct {
	HotelID            string          `json:"hotel_id" binding:"required,uuid"`
	RoomType           string          `json:"room_type" binding:"required"`
	PricePerNight      decimal.Decimal `json:"price_per_night" binding:"required"`
	AvailabilityStatus string          `json:"availability_status" binding:"omitempty,oneof=available unavailable maintenance"`
}

type UpdateRoomRequest struct {
	RoomType           *string          `json:"room_type"`
	PricePerNight      *decimal.Decimal `json:"price_per_night"`
	AvailabilityStatus *string          `json:"availability_status" binding:"omitempty,oneof=available unavailable maintenance"`
}

type ListRoomsRequest struct {
	request.ListParams
	HotelID  string           `form:"hotel_id" binding:"omitempty,uuid"`
	RoomType string           `form:"room_type"`
	Status   string           `form:"status" binding:"omitempty,oneof=available unavailable maintenance"`
	MaxPrice *decimal.Decimal `form:"max_price"`
}

type AvailabilityRequest struct {
	CheckInDate  string `form:"check_in_date" binding:"required"`
	CheckOutDate string `form:"check_out_date" binding:"required"`
}

type AvailabilityResponse struct {
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Capacity     int    `json:"capacity"`
	Booked       int    `json:"booked"`
	Available    int    `json:"available"`
}

func NewAvailabilityResponse(a *booking.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		RoomID:       a.RoomID,
		CheckInDate:  a.CheckIn,
		CheckOutDate: a.CheckOut,
		Capacity:     a.Capacity,
		Booked:       a.Booked,
		Available:    a.Available,
	}
}

type RoomResponse struct {
	ID                 string    `json:"id"`
	HotelID            string    `json:"hotel_id"`
	HotelName          string    `json:"hotel_name"`
	RoomType           string    `json:"room_type"`
	PricePerNight      string    `json:"price_per_night"`
	AvailabilityStatus string    `json:"availability_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:                 rm.ID,
		HotelID:            rm.HotelID,
		HotelName:          rm.HotelName,
		RoomType:           rm.RoomType,
		PricePerNight:      rm.PricePerNight.StringFixed(2),
		AvailabilityStatus: string(rm.AvailabilityStatus),
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}
