package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
)

// GetPrincipal returns the authenticated principal stored by the Required
// middleware, or false when the request is unauthenticated.
func GetPrincipal(c *gin.Context) (access.Principal, bool) {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(access.Principal); ok {
			return p, true
		}
	}
	return access.Principal{}, false
}
