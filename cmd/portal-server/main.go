package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/careview/portal/internal/config"
	"github.com/careview/portal/internal/domain/analytics"
	"github.com/careview/portal/internal/domain/appointments"
	"github.com/careview/portal/internal/domain/directory"
	"github.com/careview/portal/internal/domain/prescriptions"
	"github.com/careview/portal/internal/domain/records"
	"github.com/careview/portal/internal/domain/users"
	"github.com/careview/portal/internal/platform/auth"
	"github.com/careview/portal/internal/platform/middleware"
	"github.com/careview/portal/internal/platform/upstream"
	"github.com/careview/portal/pkg/pagination"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal-server",
		Short: "Healthcare portal API gateway",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the portal API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	pagination.SetDefaultPageSize(cfg.PageSize)

	// Upstream backend client
	client := upstream.New(upstream.Options{
		BaseURL: cfg.UpstreamBaseURL,
		Timeout: cfg.UpstreamTimeoutDuration(),
		Retries: cfg.UpstreamRetries,
	}, logger)
	logger.Info().Str("upstream", cfg.UpstreamBaseURL).Msg("upstream client ready")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API group behind authentication
	api := e.Group("/api/v1")
	if cfg.IsDev() {
		api.Use(auth.DevMiddleware([]byte(cfg.AuthSigningKey)))
	} else {
		api.Use(auth.Middleware([]byte(cfg.AuthSigningKey)))
	}

	// -- Register domain handlers --

	recordRepo := records.NewHTTPRepository(client)
	recordSvc := records.NewService(recordRepo)
	records.NewHandler(recordSvc).RegisterRoutes(api)

	apptRepo := appointments.NewHTTPRepository(client)
	apptSvc := appointments.NewService(apptRepo)
	appointments.NewHandler(apptSvc).RegisterRoutes(api)

	rxRepo := prescriptions.NewHTTPRepository(client)
	rxSvc := prescriptions.NewService(rxRepo)
	prescriptions.NewHandler(rxSvc).RegisterRoutes(api)

	docRepo := directory.NewHTTPRepository(client)
	directory.NewHandler(directory.NewService(docRepo)).RegisterRoutes(api)

	userRepo := users.NewHTTPRepository(client)
	users.NewHandler(users.NewService(userRepo)).RegisterRoutes(api)

	summaryRepo := analytics.NewHTTPRepository(client)
	analyticsSvc := analytics.NewService(summaryRepo, recordRepo, apptRepo, rxRepo, logger)
	analytics.NewHandler(analyticsSvc).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting portal server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	return nil
}
