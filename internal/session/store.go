// Package session is the gateway's auth context: one explicit store of
// logged-in state with Login/Logout mutators.
package session

import (
	"context"
	"errors"
	"time"

	"tripwise/internal/domain/models"
)

// ErrNotFound is returned by a Store when no session has the given id.
var ErrNotFound = errors.New("session not found")

// Store persists sessions. Writers do not lock across calls; last writer wins.
type Store interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id string) (models.Session, error)
	UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error
	SetLandingPath(ctx context.Context, id, path string) error
	// TakeLandingPath returns the stashed landing path and clears it.
	TakeLandingPath(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
