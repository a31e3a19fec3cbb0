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

	"github.com/dimitrije/collage-api/internal/config"
	"github.com/dimitrije/collage-api/internal/framecheck"
	"github.com/dimitrije/collage-api/internal/handlers"
	"github.com/dimitrije/collage-api/internal/repository"
	"github.com/dimitrije/collage-api/internal/server"
	"github.com/dimitrije/collage-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	posts, closeStore, err := repository.Open(ctx, cfg.Store)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("backend", cfg.Store.Backend), zap.Error(err))
	}

	collageService := services.NewCollageService(posts)
	checker := framecheck.NewChecker(cfg.CheckTimeout)

	router := server.NewRouter(
		handlers.NewCollageHandler(collageService, logger),
		handlers.NewCheckHandler(checker, logger),
		server.Options{
			Release:     cfg.IsProduction(),
			CORSOrigins: cfg.CORSOrigins,
			Logger:      logger,
		},
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := closeStore(shutdownCtx); err != nil {
		logger.Error("Store close failed", zap.Error(err))
	}
}
