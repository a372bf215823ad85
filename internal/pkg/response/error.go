package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

// Detailer lets an error contribute extra JSON fields to the error response,
// e.g. the remaining unit count on a capacity failure.
type Detailer interface {
	ErrorDetails() map[string]any
}

// Error writes a JSON error response. AppError values determine the status
// code and message; anything else is logged and reported as a plain 500.
func Error(c *gin.Context, err error) {
	body := gin.H{}

	var d Detailer
	if errors.As(err, &d) {
		for k, v := range d.ErrorDetails() {
			body[k] = v
		}
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body["error"] = appErr.Message
		c.JSON(appErr.Code, body)
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
