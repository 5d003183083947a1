package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-catalog-backend/internal/api/routes"
	"project-catalog-backend/internal/config"
	"project-catalog-backend/internal/database"
	"project-catalog-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// @title Project Catalog API
// @version 1.0
// @description Catalog of projects with technology and member associations
// @BasePath /api/v1
func main() {
	// Load .env if present, real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	setupLogging(cfg)
	log := logger.New()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	dbLogLevel := gormlogger.Error
	if cfg.IsDevelopment() {
		dbLogLevel = gormlogger.Warn
	}
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: dbLogLevel,
	})
	if err != nil {
		log.WithField("error", err.Error()).Fatal("failed to initialize database")
	}

	router := routes.SetupRoutes(db, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField("error", err.Error()).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithField("error", err.Error()).Error("forced shutdown")
	}
	if err := database.Close(db); err != nil {
		log.WithField("error", err.Error()).Error("failed to close database")
	}
	log.Info("server stopped")
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
