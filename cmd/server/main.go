package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ironplan/workout-planner/internal/api"
	"ironplan/workout-planner/internal/config"
	"ironplan/workout-planner/internal/repository/sqlite"
	"ironplan/workout-planner/internal/service"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	// --- Logging ---
	var logger *zap.Logger
	if cfg.Log.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("starting workout planner server")

	// --- Database ---
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("could not open database", zap.String("path", cfg.Database.Path), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()
	logger.Info("database ready", zap.String("path", cfg.Database.Path))

	// --- Repositories ---
	dayRepo := sqlite.NewWorkoutDayRepository(db, logger)

	// --- Services ---
	dayService := service.NewDayService(dayRepo, logger)
	var authService service.AuthService
	if cfg.Auth.Enabled {
		authService = service.NewAuthService(cfg.Auth.PasswordHash, cfg.Auth.Secret, cfg.Auth.TokenExpiration)
		logger.Info("bearer auth enabled")
	}

	// --- Router ---
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, cfg.Auth.Secret, authService, dayService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exiting")
}
