package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"capsim-round/internal/api"
	"capsim-round/internal/config"
	"capsim-round/internal/market"
	"capsim-round/internal/simulation"
	"capsim-round/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadServer()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
	}
	logrus.SetLevel(level)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	catalog, err := market.LoadOrDefault(cfg.SegmentsFile)
	if err != nil {
		logrus.Fatalf("Failed to load segments: %v", err)
	}
	logrus.Infof("Market segments: %v", catalog.Names())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache := store.NewRoundCache(cfg.RoundTTL)
	go cache.Run(ctx, 5*time.Minute)

	router := api.NewRouter(simulation.New(catalog), cache, api.Options{CORSOrigins: cfg.CORSOrigins})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("Shutdown: %v", err)
		}
	}()

	logrus.Infof("Starting API server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatalf("Failed to start server: %v", err)
	}
	logrus.Info("Server stopped")
}
