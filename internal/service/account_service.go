package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
	"propertysource-web/internal/metrics"
)

// SignupInput is the signup form as submitted.
type SignupInput struct {
	FullName        string
	Email           string
	MobileNumber    string
	Password        string
	ConfirmPassword string
	CompanyName     string
	Role            domain.Role
}

// AccountService signs users in and out against the backend.
type AccountService interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Signup(ctx context.Context, in SignupInput) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type accountService struct {
	backend  Backend
	sessions SessionService
	logger   *logrus.Logger
}

func NewAccountService(b Backend, sessions SessionService, logger *logrus.Logger) AccountService {
	if logger == nil {
		logger = logrus.New()
	}
	return &accountService{
		backend:  b,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *accountService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	resp, err := s.backend.Login(ctx, backend.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		metrics.IncAuthAttempt("login", "failure")
		return nil, fmt.Errorf("login: %w", err)
	}

	session, err := s.startSession(ctx, resp)
	if err != nil {
		metrics.IncAuthAttempt("login", "error")
		return nil, err
	}
	metrics.IncAuthAttempt("login", "success")
	return session, nil
}

func (s *accountService) Signup(ctx context.Context, in SignupInput) (*domain.Session, error) {
	if in.Password != in.ConfirmPassword {
		metrics.IncAuthAttempt("signup", "mismatch")
		return nil, ErrPasswordMismatch
	}

	role := in.Role
	if role != domain.RoleLandlord {
		role = domain.RoleStudent
	}
	req := backend.SignupRequest{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		Password:     in.Password,
		Role:         role,
	}
	if role == domain.RoleLandlord {
		req.CompanyName = strings.TrimSpace(in.CompanyName)
	}

	resp, err := s.backend.Signup(ctx, req)
	if err != nil {
		metrics.IncAuthAttempt("signup", "failure")
		return nil, fmt.Errorf("signup: %w", err)
	}

	session, err := s.startSession(ctx, resp)
	if err != nil {
		metrics.IncAuthAttempt("signup", "error")
		return nil, err
	}
	metrics.IncAuthAttempt("signup", "success")
	return session, nil
}

func (s *accountService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.End(ctx, sessionID)
}

func (s *accountService) startSession(ctx context.Context, resp *backend.AuthResponse) (*domain.Session, error) {
	if resp == nil || resp.Token == "" {
		return nil, errors.New("backend returned no token")
	}
	session, err := s.sessions.Start(ctx, resp.Token, resp.User)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"user": resp.User.ID.String(),
		"role": resp.User.Role,
	}).Info("session started")
	return session, nil
}
