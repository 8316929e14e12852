package service

import (
	"context"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
)

// Backend is the subset of the PropertySource API the services call.
// *backend.Client implements it.
type Backend interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error)
	Signup(ctx context.Context, req backend.SignupRequest) (*backend.AuthResponse, error)

	Universities(ctx context.Context) ([]domain.University, error)
	Seed(ctx context.Context) error
	SearchProperties(ctx context.Context, filter backend.SearchFilter) ([]domain.Property, error)
	Property(ctx context.Context, id domain.ID) (*domain.Property, error)
	PropertySlots(ctx context.Context, id domain.ID) ([]domain.Slot, error)

	BookSlot(ctx context.Context, propertyID domain.ID, req backend.BookingRequest) error
	StudentBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id domain.ID) error

	LandlordProperties(ctx context.Context) ([]domain.Property, error)
	CreateSlot(ctx context.Context, req backend.SlotRequest) (*domain.Slot, error)

	AdminSummary(ctx context.Context) (*domain.AdminSummary, error)
	AdminUsers(ctx context.Context) ([]domain.User, error)
	AdminBookings(ctx context.Context) ([]domain.Booking, error)
}

var _ Backend = (*backend.Client)(nil)
