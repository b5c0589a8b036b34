// Package main is the entry point for the EventDeck dashboard API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdeck/internal/cache"
	"eventdeck/internal/catalog"
	"eventdeck/internal/config"
	"eventdeck/internal/database"
	"eventdeck/internal/directory"
	"eventdeck/internal/events"
	"eventdeck/internal/handlers"
	"eventdeck/internal/router"
	"eventdeck/internal/session"
	"eventdeck/internal/storage"
	"eventdeck/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	ctx := context.Background()

	// Connect to MongoDB.
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	cols := database.NewCollections(client, cfg.MongoDB)

	// Seed the initial staff account (no-op if any account exists).
	if err := database.SeedAdmin(ctx, cols, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		slog.Error("failed to seed admin account", "error", err)
		os.Exit(1)
	}

	// Connect to Redis for session storage.
	redisClient, err := cache.Connect(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// In non-development environments, mark session cookies as Secure.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(redisClient, secureCookies)

	// Connect to S3-compatible object storage (optional; the app works
	// without it, with uploads disabled).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, file uploads disabled")
	}

	// Initialize data stores.
	categoryStore := store.NewCategoryStore(cols.Categories)
	subCategoryStore := store.NewSubCategoryStore(cols.SubCategories)
	eventStore := store.NewEventStore(cols.Events)
	userStore := store.NewUserStore(cols.Users)
	reportStore := store.NewReportStore(cols.Reports)
	contactStore := store.NewContactStore(cols.ContactMessages)
	settingStore := store.NewSettingStore(cols.AppSettings)
	adminStore := store.NewAdminStore(cols.SubAdmins)

	// Domain services. The catalog manager and the user index hold local
	// snapshots, warmed here so the first request doesn't pay for it.
	var managerBlobs catalog.BlobStore
	var serviceBlobs events.BlobStore
	var settingBlobs handlers.SettingBlobStore
	if storageClient != nil {
		managerBlobs = storageClient
		serviceBlobs = storageClient
		settingBlobs = storageClient
	}
	manager := catalog.New(categoryStore, subCategoryStore, managerBlobs)
	if _, err := manager.Refresh(ctx); err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	eventService := events.NewService(eventStore, serviceBlobs)

	userIndex := directory.NewIndex(userStore)
	if err := userIndex.Refresh(ctx); err != nil {
		slog.Error("failed to load user directory", "error", err)
		os.Exit(1)
	}

	// Create handler groups with their dependencies.
	h := router.Handlers{
		Auth:       handlers.NewAuth(sessionStore, adminStore),
		Categories: handlers.NewCategories(manager),
		Events:     handlers.NewEvents(eventService),
		Users:      handlers.NewUsers(userIndex),
		Reports:    handlers.NewReports(reportStore),
		Contacts:   handlers.NewContacts(contactStore),
		Settings:   handlers.NewSettings(settingStore, settingBlobs),
		Admins:     handlers.NewAdmins(adminStore),
		Dashboard:  handlers.NewDashboard(userStore, categoryStore, eventStore, reportStore),
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, h, cfg.DashboardOrigin, secureCookies)

	// Create the HTTP server with sensible timeouts. WriteTimeout leaves
	// room for multipart uploads to blob storage.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
