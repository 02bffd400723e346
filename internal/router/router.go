package router // package router defines how HTTP routes are registered for the API

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// Deps carries everything the routes need.  Redis may be nil; rate limiting
// then falls back to in-process buckets and the rate card is not cached.
type Deps struct {
	Cfg       config.Config
	RateLimit config.RateLimitConfig
	Cache     config.CacheConfig
	Redis     *redis.Client
	Hotel     *booking.Coordinator
	Log       *slog.Logger
}

// RegisterRoutes wires the whole API onto e.
//
//	GET  /healthz                        public
//	POST /v1/auth/login                  public
//	GET  /v1/rooms, /v1/rooms/available,
//	     /v1/rooms/:number, /v1/rates    public (rates cached)
//	everything else under /v1            staff token required
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.Validator = handler.NewRequestValidator()
	e.GET("/healthz", handler.Health(d.Hotel))

	v1 := e.Group("/v1", middleware.NewTokenBucket(d.RateLimit, d.Redis, d.Log))

	auth := handler.NewAuthHandler(d.Cfg)
	v1.POST("/auth/login", auth.Login)

	rooms := handler.NewRoomHandler(d.Hotel, d.Log)
	v1.GET("/rooms", rooms.ListRooms)
	v1.GET("/rooms/available", rooms.AvailableRooms)
	v1.GET("/rooms/:number", rooms.GetRoom)
	v1.GET("/rates", rooms.Rates, middleware.NewRedisCache(d.Cache, d.Redis, d.Log))

	staff := v1.Group("", middleware.JWTAuth(d.Cfg.JWTSecret), middleware.RequireRole(utils.RoleStaff))
	staff.GET("/me", auth.Me)
	staff.POST("/rooms", rooms.RegisterRoom)

	res := handler.NewReservationHandler(d.Hotel, d.Log)
	staff.POST("/reservations", res.CreateReservation)
	staff.GET("/reservations", res.ListReservations)
	staff.POST("/reservations/confirm", res.ConfirmBatch)
	staff.GET("/reservations/:id", res.GetReservation)
	staff.POST("/reservations/:id/confirm", res.ConfirmReservation)
	staff.PATCH("/reservations/:id/dates", res.ChangeDates)
	staff.DELETE("/reservations/:id", res.CancelReservation)
	staff.GET("/reservations/:id/voucher", res.Voucher)
	staff.GET("/customers/:document/reservations", res.CustomerReservations)

	reports := handler.NewReportHandler(d.Hotel)
	staff.GET("/reports/revenue", reports.Revenue)
	staff.GET("/reports/confirmed", reports.Confirmed)
}
