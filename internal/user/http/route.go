package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, superAdminMiddleware gin.HandlerFunc) {
	auth := g.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	users := g.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", h.Me)

		super := users.Group("")
		super.Use(superAdminMiddleware)
		{
			super.PATCH("/:id/role", h.UpdateRole)
		}
	}
}
