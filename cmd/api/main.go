package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"bookline/internal/config"
	"bookline/internal/database"
	"bookline/internal/middleware"
	"bookline/internal/modules/booking"
	"bookline/internal/modules/catalog"
	"bookline/internal/modules/reminder"
	jwtsvc "bookline/internal/pkg/jwt"
	"bookline/internal/pkg/logger"
	"bookline/internal/pkg/mail"
	"bookline/internal/repository"
)

func main() {
	_ = godotenv.Load()
	logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		logrus.Fatal(err)
	}

	storeRepo := repository.NewStoreRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	catalogService := catalog.NewService(storeRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(reservationRepo, storeRepo, cfg.DefaultReservationStatus)
	bookingHandler := booking.NewHandler(bookingService)

	mailer := mail.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.FromEmail)
	reminderService := reminder.NewService(reservationRepo, storeRepo, mailer, cfg.SweepWindow, cfg.SweepBatchSize)
	sweeper := reminder.NewSweeper(reminderService, cfg.SweepInterval)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// protected (owner / admin)
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweeper.Run(ctx)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		logrus.WithField("addr", cfg.HTTPAddr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("shutdown failed")
	}
}
