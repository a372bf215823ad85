package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/hotel-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/config"
	"github.com/nekogravitycat/hotel-booking-backend/internal/favourite"
	favouriteHttp "github.com/nekogravitycat/hotel-booking-backend/internal/favourite/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	hotelHttp "github.com/nekogravitycat/hotel-booking-backend/internal/hotel/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/notification"
	notificationHttp "github.com/nekogravitycat/hotel-booking-backend/internal/notification/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/observability"
	"github.com/nekogravitycat/hotel-booking-backend/internal/payment"
	paymentHttp "github.com/nekogravitycat/hotel-booking-backend/internal/payment/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/review"
	reviewHttp "github.com/nekogravitycat/hotel-booking-backend/internal/review/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	roomHttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
	userHttp "github.com/nekogravitycat/hotel-booking-backend/internal/user/http"
)

// Services bundles everything the router needs. Handlers receive services,
// never repositories or database handles.
type Services struct {
	User         user.Service
	Hotel        hotel.Service
	Room         room.Service
	Booking      booking.Service
	Review       review.Service
	Favourite    favourite.Service
	Notification notification.Service
	Payment      payment.Service
}

// NewRouter assembles middleware (CORS, request logging, recovery, auth) and
// registers every module's routes under /v1.
func NewRouter(cfg *config.Config, logger zerolog.Logger, services Services, jwtManager *auth.JWTManager) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(observability.RequestLogger(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMiddleware := auth.Required(jwtManager)
	adminMiddleware := RequireAdmin()
	superAdminMiddleware := RequireSuperAdmin()

	userHandler := userHttp.NewHandler(services.User, jwtManager)
	hotelHandler := hotelHttp.NewHandler(services.Hotel)
	roomHandler := roomHttp.NewHandler(services.Room, services.Booking)
	bookingHandler := bookingHttp.NewHandler(services.Booking)
	reviewHandler := reviewHttp.NewHandler(services.Review)
	favouriteHandler := favouriteHttp.NewHandler(services.Favourite)
	notificationHandler := notificationHttp.NewHandler(services.Notification)
	paymentHandler := paymentHttp.NewHandler(services.Payment)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, superAdminMiddleware)
		hotelHttp.RegisterRoutes(v1, hotelHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, authMiddleware)
		favouriteHttp.RegisterRoutes(v1, favouriteHandler, authMiddleware)
		notificationHttp.RegisterRoutes(v1, notificationHandler, authMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware)
	}

	return r
}
