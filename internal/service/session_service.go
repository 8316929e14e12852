package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"propertysource-web/internal/domain"
	"propertysource-web/internal/repository"
)

// SessionService keeps the backend token and user for each browser.
type SessionService interface {
	Start(ctx context.Context, token string, user domain.User) (*domain.Session, error)
	Lookup(ctx context.Context, id string) (*domain.Session, error)
	End(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) (int64, error)
	RunPurger(ctx context.Context, interval time.Duration)
}

type sessionService struct {
	sessions repository.SessionRepository
	logger   *logrus.Logger
	now      func() time.Time
}

func NewSessionService(sessions repository.SessionRepository, logger *logrus.Logger) SessionService {
	if logger == nil {
		logger = logrus.New()
	}
	return &sessionService{
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *sessionService) Start(ctx context.Context, token string, user domain.User) (*domain.Session, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: s.now().UTC(),
		ExpiresAt: tokenExpiry(token),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Lookup(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, id); err != nil {
			s.logger.WithError(err).WithField("session", id).Warn("failed to delete expired session")
		}
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) End(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.sessions.Delete(ctx, id)
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}

// RunPurger deletes expired sessions every interval until ctx is done.
func (s *sessionService) RunPurger(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				s.logger.WithError(err).Warn("purge expired sessions")
				continue
			}
			if n > 0 {
				s.logger.WithField("count", n).Debug("purged expired sessions")
			}
		}
	}
}

// tokenExpiry reads the exp claim of a JWT without verifying it; the backend
// owns validation. Opaque tokens never expire.
func tokenExpiry(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time
	return &t
}
