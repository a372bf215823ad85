package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
)

type CreateHotelRequest struct {
	Name       string   `json:"name" binding:"required"`
	Address    string   `json:"address" binding:"required"`
	City       string   `json:"city" binding:"required"`
	Country    string   `json:"country" binding:"required"`
	StarRating *int     `json:"star_rating" binding:"omitempty,min=1,max=5"`
	Amenities  []string `json:"amenities"`
}

type UpdateHotelRequest struct {
	Name       *string  `json:"name"`
	Address    *string  `json:"address"`
	City       *string  `json:"city"`
	Country    *string  `json:"country"`
	StarRating *int     `json:"star_rating" binding:"omitempty,min=1,max=5"`
	Amenities  []string `json:"amenities"`
}

type ListHotelsRequest struct {
	request.ListParams
	City    string `form:"city"`
	Country string `form:"country"`
	MinStar int    `form:"min_star" binding:"omitempty,min=1,max=5"`
}

type HotelResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	StarRating *int      `json:"star_rating"`
	Amenities  []string  `json:"amenities"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return HotelResponse{
		ID:         h.ID,
		Name:       h.Name,
		Address:    h.Address,
		City:       h.City,
		Country:    h.Country,
		StarRating: h.StarRating,
		Amenities:  amenities,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

type AdminResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func NewAdminResponse(a hotel.AdminRef) AdminResponse {
	return AdminResponse{UserID: a.UserID, Name: a.Name, Email: a.Email}
}
