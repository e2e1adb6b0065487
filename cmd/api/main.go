package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/parkhive/parkhive-api/internal/config"
	"github.com/parkhive/parkhive-api/internal/domain/auth"
	"github.com/parkhive/parkhive-api/internal/domain/booking"
	"github.com/parkhive/parkhive-api/internal/domain/creditcard"
	"github.com/parkhive/parkhive-api/internal/domain/parking"
	"github.com/parkhive/parkhive-api/internal/domain/payment"
	"github.com/parkhive/parkhive-api/internal/domain/price"
	"github.com/parkhive/parkhive-api/internal/domain/status"
	"github.com/parkhive/parkhive-api/internal/domain/user"
	"github.com/parkhive/parkhive-api/internal/middleware"
	"github.com/parkhive/parkhive-api/internal/pkg/cache"
	"github.com/parkhive/parkhive-api/internal/pkg/database"
	"github.com/parkhive/parkhive-api/internal/pkg/jwt"
	"github.com/parkhive/parkhive-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting ParkHive API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	tagCache := cache.New(redis, cfg.CacheTTL)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	parkingRepo := parking.NewRepository(db)
	priceRepo := price.NewRepository(db)
	cardRepo := creditcard.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	bookingRepo := booking.NewRepository(db, paymentRepo)
	statusRepo := status.NewRepository(db)

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, redis)
	userService := user.NewService(userRepo, bookingRepo)
	parkingService := parking.NewService(parkingRepo)
	priceService := price.NewService(priceRepo, parkingRepo)
	cardService := creditcard.NewService(cardRepo)
	paymentService := payment.NewService(paymentRepo)
	bookingService := booking.NewService(bookingRepo, parkingRepo, priceRepo, cardRepo)
	statusService := status.NewService(statusRepo)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService, tagCache)
	parkingHandler := parking.NewHandler(parkingService, tagCache)
	priceHandler := price.NewHandler(priceService, tagCache)
	cardHandler := creditcard.NewHandler(cardService)
	paymentHandler := payment.NewHandler(paymentService, tagCache)
	bookingHandler := booking.NewHandler(bookingService, tagCache)
	statusHandler := status.NewHandler(statusService, tagCache)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/users", userHandler.Routes(authMiddleware))
		r.Mount("/parkings", parkingHandler.Routes(authMiddleware))
		r.Mount("/prices", priceHandler.Routes(authMiddleware))
		r.Mount("/credit-cards", cardHandler.Routes(authMiddleware))
		r.Mount("/payments", paymentHandler.Routes(authMiddleware))
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		r.Mount("/statuses", statusHandler.Routes(authMiddleware))

		// Sub-resource reads across domains.
		r.Get("/parkings/{id}/prices", priceHandler.ListByParking)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/users/{id}/bookings", bookingHandler.ListByUser)
			r.Get("/users/{id}/parkings", parkingHandler.ListByOwner)
			r.Get("/users/{id}/credit-cards", cardHandler.ListByOwner)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
