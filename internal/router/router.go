// Package router sets up all HTTP routes and middleware chains for the
// Inkwell API. It organizes routes into public and authenticated groups
// with appropriate middleware stacks.
package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/token"
)

// Rate limit applied per client IP across the whole API.
const (
	rateLimit       = 120
	rateLimitWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(tokens *token.Manager, allowedOrigins []string, auth *handlers.Auth, categories *handlers.Categories, drafts *handlers.Drafts, posts *handlers.Posts) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  allowOrigin(allowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	limiter := middleware.NewRateLimiter(rateLimit, rateLimitWindow)
	r.Use(limiter.Middleware)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Public routes.
	r.Post("/login", auth.Login)
	r.Post("/logout", auth.Logout)
	r.Get("/categories", categories.List)
	r.Get("/posts", posts.List)
	r.Get("/posts/{id}", posts.Get)

	// Authenticated routes — the session token must verify.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens))

		r.Get("/user", auth.CurrentUser)

		r.Post("/categories", categories.Create)
		r.Delete("/categories/{id}", categories.Delete)

		r.Route("/temporary_posts", func(r chi.Router) {
			r.Post("/", drafts.Create)
			r.Get("/", drafts.List)
			r.Get("/{id}", drafts.Get)
			r.Delete("/{id}", drafts.Delete)
		})

		r.Post("/complete_posts", posts.Create)
		r.Put("/posts/{id}", posts.Update)
		r.Delete("/posts/{id}", posts.Delete)
	})

	return r
}

// allowOrigin builds the CORS origin check: exact matches from the
// allow-list, plus "*." entries that match any subdomain — used for
// ephemeral tunnel hosts whose subdomain changes per session.
func allowOrigin(allowed []string) func(r *http.Request, origin string) bool {
	return func(r *http.Request, origin string) bool {
		for _, entry := range allowed {
			if after, ok := strings.CutPrefix(entry, "*."); ok {
				host := strings.TrimPrefix(origin, "https://")
				host = strings.TrimPrefix(host, "http://")
				if strings.HasSuffix(host, "."+after) || host == after {
					return true
				}
				continue
			}
			if origin == entry {
				return true
			}
		}
		return false
	}
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
