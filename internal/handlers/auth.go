package handlers

import (
	"log/slog"
	"net/http"

	"inkwell/internal/middleware"
	"inkwell/internal/store"
	"inkwell/internal/token"
)

// Auth groups the authentication handlers: login, logout, current user.
type Auth struct {
	users  *store.UserStore
	tokens *token.Manager
}

// NewAuth creates a new Auth handler group.
func NewAuth(users *store.UserStore, tokens *token.Manager) *Auth {
	return &Auth{users: users, tokens: tokens}
}

// loginRequest is the POST /login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and issues the session cookie. Failed
// lookups and failed password checks produce the same 401 so usernames
// cannot be probed.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateLogin(req.Username, req.Password); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	user, err := a.users.FindByUsername(req.Username)
	if err != nil {
		serverError(w, "login lookup failed", err)
		return
	}

	if user == nil || !a.users.CheckPassword(user, req.Password) {
		slog.Info("login failed", "username", req.Username)
		writeMessage(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if err := a.tokens.Issue(w, user); err != nil {
		serverError(w, "session issue failed", err)
		return
	}

	slog.Info("login succeeded", "username", user.Username, "user_id", user.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"user":    user.Public(),
	})
}

// Logout clears the session cookie. Idempotent — always returns 200,
// whether or not a session was present.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.tokens.Clear(w)
	slog.Info("logout", "remote", r.RemoteAddr)
	writeMessage(w, http.StatusOK, "logged out")
}

// CurrentUser returns the authenticated caller's identity.
func (a *Auth) CurrentUser(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":       identity.UserID,
			"username": identity.Username,
		},
	})
}
