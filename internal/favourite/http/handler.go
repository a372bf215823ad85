package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/favourite"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service favourite.Service
}

func NewHandler(service favourite.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Add(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if _, err := uuid.Parse(hotelID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.service.Add(c.Request.Context(), p, hotelID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "hotel added to favourites"})
}

func (h *Handler) Remove(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if _, err := uuid.Parse(hotelID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	p, _ := auth.GetPrincipal(c)

	if err := h.service.Remove(c.Request.Context(), p, hotelID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "hotel removed from favourites"})
}

func (h *Handler) ListMine(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	params.Normalize()

	p, _ := auth.GetPrincipal(c)

	favourites, total, err := h.service.ListMine(c.Request.Context(), p, params.Limit, params.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FavouriteResponse, len(favourites))
	for i, f := range favourites {
		items[i] = NewFavouriteResponse(f)
	}
	c.JSON(http.StatusOK, response.NewPage(items, params.Limit, params.Offset, total))
}
