package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/logger"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/router"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := config.Load()
	lg := logger.Setup(os.Stdout, cfg.Env, cfg.LogLevel)
	lg.Info("[main] starting hotel reservation service", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinks := []booking.EventSink{booking.LogSink(lg)}
	if cfg.Events.Enabled {
		sinks = append(sinks, service.NewPublisher(cfg.Events.URL, cfg.Events.Queue, lg))
		consumer := queue.NewConsumer(cfg.Events.URL, cfg.Events.Queue, lg)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				lg.Error("[main] reservation consumer stopped", "err", err)
			}
		}()
		lg.Info("[main] publishing reservation events", "queue", cfg.Events.Queue)
	}

	hotel := booking.NewCoordinator(
		booking.WithLogger(lg),
		booking.WithEventSink(booking.MultiSink(sinks...)),
	)
	if cfg.SeedCatalog {
		hotel.Seed(booking.DefaultRooms())
		lg.Info("[main] default catalog registered", "rooms", len(hotel.Rooms()))
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig(), lg)
	if rdb != nil {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			lg.LogAttrs(c.Request().Context(), level, "[http] request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("ip", v.RemoteIP),
			)
			return nil
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))

	router.RegisterRoutes(e, router.Deps{
		Cfg:       cfg,
		RateLimit: config.LoadRateLimitConfig(),
		Cache:     config.LoadCacheConfig(),
		Redis:     rdb,
		Hotel:     hotel,
		Log:       lg,
	})

	addr := ":" + cfg.Port
	go func() {
		lg.Info("[main] listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("[main] server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	lg.Info("[main] shutdown signal received; shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("[main] graceful shutdown failed", "err", err)
	}
	lg.Info("[main] server stopped", "revenue", hotel.TotalRevenue())
}
