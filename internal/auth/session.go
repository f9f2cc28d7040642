package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// SessionTTL bounds both the cookie max-age and server-side session lifetime.
	SessionTTL    = 24 * time.Hour
	SessionCookie = "admin_session"
)

// Session is the server-side state behind one admin cookie.
type Session struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines how admin sessions are stored and retrieved. It is injected
// everywhere so tests can use the in-memory implementation and production can
// point at Redis.
type Store interface {
	// Create mints a new opaque token for username and records the session.
	Create(ctx context.Context, username string) (string, error)
	// Has reports whether the token identifies a live session.
	Has(ctx context.Context, token string) bool
	// Get returns the session for token, or nil if there is none.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes a session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
	// Cleanup evicts sessions strictly older than maxAge.
	Cleanup(ctx context.Context, maxAge time.Duration) error
}

// newToken returns a 256-bit hex token. Session tokens must be unguessable,
// so this draws from crypto/rand and nothing else.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
