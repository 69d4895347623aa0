// Package main is the entry point for the Inkwell blogging server.
// It loads configuration, connects the per-store database pools, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/handlers"
	"inkwell/internal/router"
	"inkwell/internal/store"
	"inkwell/internal/token"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load a .env file if one is present; real environment wins.
	if err := godotenv.Load(); err == nil {
		slog.Debug(".env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"delete_draft_on_publish", cfg.DeleteDraftOnPublish,
	)

	// Each logical store gets its own bounded pool; the DSNs default to
	// one shared database but may point at separate ones.
	pools := map[string]*sql.DB{}
	for _, s := range []struct {
		name string
		dsn  string
	}{
		{"users", cfg.UsersDSN},
		{"categories", cfg.CategoriesDSN},
		{"drafts", cfg.DraftsDSN},
		{"posts", cfg.PostsDSN},
	} {
		db, err := database.Connect(s.name, s.dsn)
		if err != nil {
			slog.Error("failed to connect to database", "store", s.name, "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db, s.name); err != nil {
			slog.Error("failed to run migrations", "store", s.name, "error", err)
			os.Exit(1)
		}
		pools[s.name] = db
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(pools["users"], pools["categories"]); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Upgrade legacy plaintext passwords to bcrypt when enabled.
	if cfg.UpgradePasswords {
		if err := database.UpgradePasswordHashes(pools["users"]); err != nil {
			slog.Error("failed to upgrade password hashes", "error", err)
			os.Exit(1)
		}
	}

	// Session tokens are marked Secure (HTTPS-only) outside development.
	tokens := token.NewManager([]byte(cfg.SessionSecret), cfg.SessionTTL, !cfg.IsDev())

	userStore := store.NewUserStore(pools["users"])
	categoryStore := store.NewCategoryStore(pools["categories"])
	draftStore := store.NewDraftStore(pools["drafts"])
	postStore := store.NewPostStore(pools["posts"])

	authHandlers := handlers.NewAuth(userStore, tokens)
	categoryHandlers := handlers.NewCategories(categoryStore)
	draftHandlers := handlers.NewDrafts(draftStore)
	postHandlers := handlers.NewPosts(postStore, categoryStore, draftStore, cfg.DeleteDraftOnPublish)

	r := router.New(tokens, cfg.AllowedOrigins, authHandlers, categoryHandlers, draftHandlers, postHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
