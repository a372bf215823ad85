package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/favourite"
)

type FavouriteResponse struct {
	HotelID   string    `json:"hotel_id"`
	HotelName string    `json:"hotel_name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFavouriteResponse(f *favourite.Favourite) FavouriteResponse {
	return FavouriteResponse{
		HotelID:   f.HotelID,
		HotelName: f.HotelName,
		City:      f.City,
		Country:   f.Country,
		CreatedAt: f.CreatedAt,
	}
}
