package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*backend.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockBackend) Signup(ctx context.Context, req backend.SignupRequest) (*backend.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*backend.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockBackend) Universities(ctx context.Context) ([]domain.University, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.University)
	return list, args.Error(1)
}

func (m *mockBackend) Seed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockBackend) SearchProperties(ctx context.Context, filter backend.SearchFilter) ([]domain.Property, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]domain.Property)
	return list, args.Error(1)
}

func (m *mockBackend) Property(ctx context.Context, id domain.ID) (*domain.Property, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Property)
	return p, args.Error(1)
}

func (m *mockBackend) PropertySlots(ctx context.Context, id domain.ID) ([]domain.Slot, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]domain.Slot)
	return list, args.Error(1)
}

func (m *mockBackend) BookSlot(ctx context.Context, propertyID domain.ID, req backend.BookingRequest) error {
	return m.Called(ctx, propertyID, req).Error(0)
}

func (m *mockBackend) StudentBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Booking)
	return list, args.Error(1)
}

func (m *mockBackend) CancelBooking(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBackend) LandlordProperties(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Property)
	return list, args.Error(1)
}

func (m *mockBackend) CreateSlot(ctx context.Context, req backend.SlotRequest) (*domain.Slot, error) {
	args := m.Called(ctx, req)
	slot, _ := args.Get(0).(*domain.Slot)
	return slot, args.Error(1)
}

func (m *mockBackend) AdminSummary(ctx context.Context) (*domain.AdminSummary, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.AdminSummary)
	return s, args.Error(1)
}

func (m *mockBackend) AdminUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.User)
	return list, args.Error(1)
}

func (m *mockBackend) AdminBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Booking)
	return list, args.Error(1)
}
