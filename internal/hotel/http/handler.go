package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service hotel.Service
}

func NewHandler(service hotel.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateHotelRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, _ := auth.GetPrincipal(c)

	ht, err := h.service.Create(c.Request.Context(), p, hotel.CreateRequest{
		Name:       body.Name,
		Address:    body.Address,
		City:       body.City,
		Country:    body.Country,
		StarRating: body.StarRating,
		Amenities:  body.Amenities,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewHotelResponse(ht))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	ht, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewHotelResponse(ht))
}

func (h *Handler) List(c *gin.Context) {
	var req ListHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	hotels, total, err := h.service.List(c.Request.Context(), hotel.Filter{
		City:    req.City,
		Country: req.Country,
		MinStar: req.MinStar,
		Limit:   req.Limit,
		Offset:  req.Offset,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht)
	}
	c.JSON(http.StatusOK, response.NewPage(items, req.Limit, req.Offset, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	var body UpdateHotelRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, _ := auth.GetPrincipal(c)

	ht, err := h.service.Update(c.Request.Context(), p, id, hotel.UpdateRequest{
		Name:       body.Name,
		Address:    body.Address,
		City:       body.City,
		Country:    body.Country,
		StarRating: body.StarRating,
		Amenities:  body.Amenities,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewHotelResponse(ht))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	p, _ := auth.GetPrincipal(c)

	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AssignAdmin(c *gin.Context) {
	hotelID := c.Param("id")
	userID := c.Param("userID")
	if _, err := uuid.Parse(hotelID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	p, _ := auth.GetPrincipal(c)

	if err := h.service.AssignAdmin(c.Request.Context(), p, hotelID, userID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UnassignAdmin(c *gin.Context) {
	hotelID := c.Param("id")
	userID := c.Param("userID")
	if _, err := uuid.Parse(hotelID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	p, _ := auth.GetPrincipal(c)

	if err := h.service.UnassignAdmin(c.Request.Context(), p, hotelID, userID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListAdmins(c *gin.Context) {
	hotelID := c.Param("id")
	if _, err := uuid.Parse(hotelID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	p, _ := auth.GetPrincipal(c)

	admins, err := h.service.ListAdmins(c.Request.Context(), p, hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AdminResponse, len(admins))
	for i, a := range admins {
		items[i] = NewAdminResponse(a)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
