package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"playland-backend/config"
	"playland-backend/internal/api"
	"playland-backend/internal/camera"
	"playland-backend/internal/db"
	"playland-backend/internal/notification"
	"playland-backend/internal/simulator"
	"playland-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "playland-backend ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	appStore := store.New(store.NewGormPersister(gormDB), cfg.Capacity.MaxCapacity)
	logger.Println("application state loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	webpushOptions := &webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Println("VAPID keys are not configured; waiting-list push notifications are disabled")
	}

	workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, webpushOptions)
	workerPool.Start(ctx)

	driftSvc := simulator.NewService(&cfg.Simulator, appStore, nil)
	go driftSvc.Run(ctx)

	feed := camera.NewFeed(cfg.Camera.Interval)
	defer feed.Close()

	handler := api.NewHandler(appStore, feed, workerPool, gormDB, webpushOptions)
	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
