package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"patientsapi/cmd/internal/config"
	"patientsapi/cmd/internal/domain/database"
	"patientsapi/cmd/internal/domain/database/repository"
	"patientsapi/cmd/internal/routes"
	"patientsapi/cmd/internal/service"
	"patientsapi/cmd/internal/utils/validators"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}
	log.SetLevel(cfg.LogLevel)

	validate := validator.New()
	validators.Register(validate)

	// Init database
	db, err := database.Init(cfg)
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorf("failed to close database: %v", err)
		}
	}()

	e, err := newServer(cfg, db, validate)
	if err != nil {
		log.Fatal("failed to build server: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("listening on :%s (%s)", cfg.Port, cfg.DatabaseDriver)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}

func newServer(cfg *config.Config, db *gorm.DB, validate *validator.Validate) (*echo.Echo, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Getting repositories
	patientRepo := repository.NewPatientRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)

	// Getting services
	patientService := service.NewPatientService(patientRepo, validate)
	apptService := service.NewAppointmentService(apptRepo, validate)

	// Getting routes
	patientRoutes := routes.NewPatientDefault(patientService)
	apptRoutes := routes.NewAppointmentDefault(apptService)
	healthRoutes := routes.NewHealthDefault(sqlDB)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	registerMiddleware(e, cfg)

	routes.Mount(e, patientRoutes, apptRoutes, healthRoutes)
	return e, nil
}

func registerMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infoj(log.JSON{
				"id":      v.RequestID,
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	if cfg.RateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))
		e.Use(middleware.RateLimiter(store))
	}
}
