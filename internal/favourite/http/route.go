package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/favourites")
	group.Use(authMiddleware)
	{
		group.GET("", h.ListMine)
		group.POST("/:hotelID", h.Add)
		group.DELETE("/:hotelID", h.Remove)
	}
}
