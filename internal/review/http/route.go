package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	hotels := g.Group("/hotels/:id/reviews")
	{
		hotels.GET("", h.ListByHotel)
		hotels.POST("", authMiddleware, h.Create)
	}

	reviews := g.Group("/reviews")
	reviews.Use(authMiddleware)
	{
		reviews.DELETE("/:id", h.Delete)
	}
}
