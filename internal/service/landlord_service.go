package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
)

const (
	// DefaultSlotStart and DefaultSlotEnd prefill the availability form.
	DefaultSlotStart = "14:00"
	DefaultSlotEnd   = "15:00"
)

// SlotInput is the landlord's availability form.
type SlotInput struct {
	PropertyID domain.ID
	Date       string
	StartTime  string
	EndTime    string
}

// Validate applies the light form checks; the backend has the final say.
func (in SlotInput) Validate() error {
	if in.PropertyID.IsZero() {
		return fmt.Errorf("%w: choose a property", ErrInvalidSlot)
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSlot)
	}
	start, err := time.Parse("15:04", in.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start time must be HH:MM", ErrInvalidSlot)
	}
	end, err := time.Parse("15:04", in.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end time must be HH:MM", ErrInvalidSlot)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidSlot)
	}
	return nil
}

// LandlordService backs the landlord dashboard.
type LandlordService interface {
	Properties(ctx context.Context) ([]domain.Property, error)
	CreateSlot(ctx context.Context, in SlotInput) (*domain.Slot, error)
}

type landlordService struct {
	backend Backend
}

func NewLandlordService(b Backend) LandlordService {
	return &landlordService{backend: b}
}

func (s *landlordService) Properties(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.backend.LandlordProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("list landlord properties: %w", err)
	}
	return properties, nil
}

func (s *landlordService) CreateSlot(ctx context.Context, in SlotInput) (*domain.Slot, error) {
	in.Date = strings.TrimSpace(in.Date)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	slot, err := s.backend.CreateSlot(ctx, backend.SlotRequest{
		PropertyID: in.PropertyID,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
	})
	if err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	return slot, nil
}
