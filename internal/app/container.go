package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/hotel-booking-backend/internal/api"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/config"
	"github.com/nekogravitycat/hotel-booking-backend/internal/favourite"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/notification"
	"github.com/nekogravitycat/hotel-booking-backend/internal/payment"
	"github.com/nekogravitycat/hotel-booking-backend/internal/review"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires repositories, services and the router. The pool is
// injected here and nowhere else; no package holds a global database handle.
func NewContainer(cfg *config.Config, logger zerolog.Logger, pool *pgxpool.Pool) *Container {
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	// Hotel module first: its repository doubles as the assignment source the
	// user module reads at login.
	hotelRepo := hotel.NewPgxRepository(pool)

	// User module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher, hotelRepo)

	hotelService := hotel.NewService(hotelRepo, userService)

	// Room module
	roomRepo := room.NewPgxRepository(pool)
	roomService := room.NewService(roomRepo, hotelService)

	// Notification module
	notificationRepo := notification.NewPgxRepository(pool)
	notificationService := notification.NewService(notificationRepo)

	// Booking module
	ledger := booking.NewLedger(cfg.RoomUnitCapacity)
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(bookingRepo, roomService, ledger, notificationService, cfg.BookingHorizonDays)

	// Review module
	reviewRepo := review.NewPgxRepository(pool)
	reviewService := review.NewService(reviewRepo, hotelService)

	// Favourite module
	favouriteRepo := favourite.NewPgxRepository(pool)
	favouriteService := favourite.NewService(favouriteRepo, hotelService)

	// Payment module
	paymentService := payment.NewService(bookingService)

	router := api.NewRouter(cfg, logger, api.Services{
		User:         userService,
		Hotel:        hotelService,
		Room:         roomService,
		Booking:      bookingService,
		Review:       reviewService,
		Favourite:    favouriteService,
		Notification: notificationService,
		Payment:      paymentService,
	}, jwtManager)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
