package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventhotelbooking/config"
	_ "eventhotelbooking/docs"
	authadapter "eventhotelbooking/internal/adapters/auth"
	"eventhotelbooking/internal/adapters/email"
	deliveryhttp "eventhotelbooking/internal/delivery/http"
	"eventhotelbooking/internal/delivery/http/controllers"
	"eventhotelbooking/internal/delivery/http/middleware"
	"eventhotelbooking/internal/repository/postgres"
	"eventhotelbooking/internal/services"

	"eventhotelbooking/migrations"
)

const (
	startupTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
	bcryptCost      = 10
)

// @title Event Hotel Booking API
// @version 1.0
// @description Hotel-room booking allocation for event attendees.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := db.PingContext(startupCtx); err != nil {
		logger.Error("database ping", "err", err)
		os.Exit(1)
	}
	if err := migrations.Apply(startupCtx, db); err != nil {
		logger.Error("apply migrations", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	tokens := authadapter.NewJWT(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(bcryptCost)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailerFromAddress,
		FromName:    cfg.MailerFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	authSvc := services.NewAuthService(userRepo, sessionRepo, hasher, tokens, cfg.JWTExpiry)
	bookingSvc := services.NewBookingService(bookingRepo, roomRepo, enrollmentRepo, ticketRepo, userRepo, mailer, logger)

	bookingController := controllers.NewBookingController(logger, bookingSvc)
	authController := controllers.NewAuthController(logger, authSvc)
	requireAuth := middleware.RequireAuth(tokens, sessionRepo, logger)

	mux := deliveryhttp.NewRouter(bookingController, authController, requireAuth)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSOrigins, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("api listening", "port", cfg.Port, "env", cfg.Environment)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown", "err", err)
	}
	logger.Info("server stopped")
}
