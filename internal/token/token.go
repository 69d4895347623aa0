// Package token implements the signed, time-limited session credential.
// Tokens are HS256 JWTs carried in an HTTP-only cookie and validated
// statelessly — no server-side session storage.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"inkwell/internal/models"
)

// CookieName is the name of the session cookie sent to the browser.
const CookieName = "inkwell_session"

var (
	// ErrMissingToken indicates the request carried no session cookie.
	ErrMissingToken = errors.New("missing session token")

	// ErrInvalidToken indicates the token failed signature, expiry, or
	// claim validation.
	ErrInvalidToken = errors.New("invalid session token")
)

// Identity is the authenticated caller decoded from a valid token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// claims is the JWT payload. Subject carries the user id.
type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens and manages the cookie
// they travel in.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewManager creates a token manager. secureCookies marks session
// cookies as Secure (HTTPS-only) and should be true outside development.
func NewManager(secret []byte, ttl time.Duration, secureCookies bool) *Manager {
	return &Manager{secret: secret, ttl: ttl, secure: secureCookies}
}

// TTL returns the fixed token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the user and sets it as the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, user *models.User) error {
	now := time.Now()
	c := claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(m.ttl.Seconds()),
	})

	return nil
}

// Verify extracts the session cookie from the request and validates it.
// Returns ErrMissingToken when no cookie is present and ErrInvalidToken
// when the signature, expiry, or claims do not check out.
func (m *Manager) Verify(r *http.Request) (*Identity, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrMissingToken
	}

	var c claims
	tok, err := jwt.ParseWithClaims(cookie.Value, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: userID, Username: c.Username}, nil
}

// Clear expires the session cookie. Safe to call with no session present.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
