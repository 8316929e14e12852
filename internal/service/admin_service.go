package service

import (
	"context"
	"fmt"

	"propertysource-web/internal/domain"
)

// AdminOverview is everything the admin page shows.
type AdminOverview struct {
	Summary  domain.AdminSummary
	Users    []domain.User
	Bookings []domain.Booking
}

type AdminService interface {
	Overview(ctx context.Context) (*AdminOverview, error)
	Bookings(ctx context.Context) ([]domain.Booking, error)
}

type adminService struct {
	backend Backend
}

func NewAdminService(b Backend) AdminService {
	return &adminService{backend: b}
}

func (s *adminService) Overview(ctx context.Context) (*AdminOverview, error) {
	summary, err := s.backend.AdminSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin summary: %w", err)
	}
	users, err := s.backend.AdminUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin users: %w", err)
	}
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return nil, err
	}

	overview := &AdminOverview{Users: users, Bookings: bookings}
	if summary != nil {
		overview.Summary = *summary
	}
	return overview, nil
}

func (s *adminService) Bookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.backend.AdminBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin bookings: %w", err)
	}
	return bookings, nil
}
