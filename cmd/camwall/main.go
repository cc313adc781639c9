package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zanzhit/camera_wall/internal/config"
	authhandler "github.com/zanzhit/camera_wall/internal/http-server/handlers/auth"
	camerashandler "github.com/zanzhit/camera_wall/internal/http-server/handlers/cameras"
	feedhandler "github.com/zanzhit/camera_wall/internal/http-server/handlers/feed"
	weatherhandler "github.com/zanzhit/camera_wall/internal/http-server/handlers/weather"
	authmiddleware "github.com/zanzhit/camera_wall/internal/http-server/middleware/auth"
	"github.com/zanzhit/camera_wall/internal/http-server/middleware/logger"
	"github.com/zanzhit/camera_wall/internal/lib/maplink"
	"github.com/zanzhit/camera_wall/internal/lib/sl"
	authservice "github.com/zanzhit/camera_wall/internal/services/auth"
	cameraservice "github.com/zanzhit/camera_wall/internal/services/cameras"
	feedservice "github.com/zanzhit/camera_wall/internal/services/feed"
	"github.com/zanzhit/camera_wall/internal/services/feed/upstream"
	weatherservice "github.com/zanzhit/camera_wall/internal/services/weather"
	"github.com/zanzhit/camera_wall/internal/services/weather/nws"
	"github.com/zanzhit/camera_wall/internal/storage/postgres"
	authstorage "github.com/zanzhit/camera_wall/internal/storage/postgres/auth"
	camerastorage "github.com/zanzhit/camera_wall/internal/storage/postgres/cameras"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting application", slog.Any("config", cfg))

	cfg.DB.Password = os.Getenv("POSTGRES_PASSWORD")
	if cfg.DB.Password == "" {
		panic("POSTGRES_PASSWORD is required")
	}

	storage, err := postgres.New(cfg.DB)
	if err != nil {
		panic(err)
	}

	authStorage := authstorage.New(storage)
	cameraStorage := camerastorage.New(storage)

	authService := authservice.New(log, authStorage, authStorage, cfg.TokenTTL, cfg.Secret)
	cameraService := cameraservice.New(log, cameraStorage, cameraStorage)

	if err := authService.CreateInitialAdmin(); err != nil {
		log.Warn("initial admin not created", sl.Err(err))
	}

	// The registry stands in for the upstream feed unless one is configured.
	var feedSource feedservice.FeedProvider = cameraService
	if cfg.Feed.URL != "" {
		feedSource = upstream.New(cfg.Feed)
	}

	feedService := feedservice.New(log, feedSource, maplink.GoogleMaps{}, cfg.Feed.BatchSize)
	weatherService := weatherservice.New(log, nws.New(cfg.Weather))

	authHandler := authhandler.New(log, authService)
	cameraHandler := camerashandler.New(log, cameraService)
	feedHandler := feedhandler.New(log, feedService)
	weatherHandler := weatherhandler.New(log, weatherService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Get("/cameras", cameraHandler.Cameras)
		r.Get("/weather", weatherHandler.Label)

		r.Post("/feed/sessions", feedHandler.NewSession)
		r.Post("/feed/sessions/{session_id}/batch", feedHandler.NextBatch)

		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.JWTAuth(cfg.Secret))
			r.Use(authmiddleware.AdminRequired)

			r.Post("/auth/register", authHandler.RegisterNewUser)
			r.Post("/cameras", cameraHandler.SaveCamera)
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", sl.Err(err))
		}
	}()

	log.Info("server started")

	<-done
	log.Info("stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to stop server", sl.Err(err))

		return
	}

	log.Info("server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
