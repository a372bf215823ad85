package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), p, booking.CreateRequest{
		HotelID:  body.HotelID,
		RoomID:   body.RoomID,
		CheckIn:  body.CheckInDate,
		CheckOut: body.CheckOutDate,
		Guests:   body.NumberOfGuests,
		Rooms:    body.NumberOfRooms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	p, _ := auth.GetPrincipal(c)

	b, err := h.service.GetByID(c.Request.Context(), p, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	p, _ := auth.GetPrincipal(c)

	// A branch admin with nothing assigned has an empty scope: report it
	// rather than answering with a misleading bare page.
	if p.EmptyScope() && req.HotelID == "" {
		c.JSON(http.StatusOK, response.EmptyPage[BookingResponse](
			req.Limit, req.Offset, "no hotels assigned to your account"))
		return
	}

	bookings, total, err := h.service.List(c.Request.Context(), p, booking.ListRequest{
		UserID:        req.UserID,
		HotelID:       req.HotelID,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		Limit:         req.Limit,
		Offset:        req.Offset,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewPage(items, req.Limit, req.Offset, total))
}

func (h *Handler) ListMine(c *gin.Context) {
	var req MyBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	p, _ := auth.GetPrincipal(c)

	bookings, total, err := h.service.ListMine(c.Request.Context(), p, req.Status, req.Limit, req.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewPage(items, req.Limit, req.Offset, total))
}

func (h *Handler) Modify(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body ModifyBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, _ := auth.GetPrincipal(c)

	b, err := h.service.Modify(c.Request.Context(), p, id, booking.ModifyRequest{
		CheckIn:  body.CheckInDate,
		CheckOut: body.CheckOutDate,
		Guests:   body.NumberOfGuests,
		Rooms:    body.NumberOfRooms,
		RoomID:   body.RoomID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	p, _ := auth.GetPrincipal(c)

	b, err := h.service.Cancel(c.Request.Context(), p, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, _ := auth.GetPrincipal(c)

	b, err := h.service.UpdateStatus(c.Request.Context(), p, id, booking.StatusUpdateRequest{
		Status:        body.Status,
		PaymentStatus: body.PaymentStatus,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
