package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/payments")
	group.Use(authMiddleware)
	{
		group.POST("/:bookingID/capture", h.Capture)
		group.POST("/:bookingID/refund", h.Refund)
	}
}
