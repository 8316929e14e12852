package repository

import (
	"context"
	"errors"
	"time"

	"propertysource-web/internal/domain"
)

// ErrSessionNotFound is returned when no session matches the requested id.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists browser sessions.
type SessionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	Ping(ctx context.Context) error
}
