package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("/my-bookings", h.ListMine)
		group.GET("/:id", h.Get)
		group.PATCH("/:id/modify", h.Modify)
		group.PATCH("/:id/cancel", h.Cancel)

		admin := group.Group("")
		admin.Use(adminMiddleware)
		{
			admin.GET("", h.List)
			admin.PATCH("/:id/status", h.UpdateStatus)
		}
	}
}
