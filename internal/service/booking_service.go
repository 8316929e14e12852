package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
	"propertysource-web/internal/metrics"
)

// BookingInput is the student's booking form.
type BookingInput struct {
	SlotID       domain.ID
	FullName     string
	Email        string
	MobileNumber string
	Notes        string
}

// BookingService books, lists and cancels a student's viewings.
type BookingService interface {
	Book(ctx context.Context, propertyID domain.ID, in BookingInput) error
	Bookings(ctx context.Context) (upcoming, past []domain.Booking, err error)
	Cancel(ctx context.Context, id domain.ID) error
}

type bookingService struct {
	backend Backend
	logger  *logrus.Logger
	now     func() time.Time
}

func NewBookingService(b Backend, logger *logrus.Logger) BookingService {
	if logger == nil {
		logger = logrus.New()
	}
	return &bookingService{
		backend: b,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *bookingService) Book(ctx context.Context, propertyID domain.ID, in BookingInput) error {
	if in.SlotID.IsZero() {
		metrics.IncBookingSubmitted("missing_slot")
		return ErrSlotRequired
	}

	err := s.backend.BookSlot(ctx, propertyID, backend.BookingRequest{
		SlotID:           in.SlotID,
		FullName:         strings.TrimSpace(in.FullName),
		Email:            strings.TrimSpace(in.Email),
		MobileNumber:     strings.TrimSpace(in.MobileNumber),
		NotesFromStudent: strings.TrimSpace(in.Notes),
	})
	switch {
	case err == nil:
		metrics.IncBookingSubmitted("booked")
		return nil
	case backend.IsConflict(err):
		metrics.IncBookingSubmitted("conflict")
		return fmt.Errorf("%w: %v", ErrSlotTaken, err)
	default:
		metrics.IncBookingSubmitted("failed")
		s.logger.WithError(err).WithFields(logrus.Fields{
			"property": propertyID.String(),
			"slot":     in.SlotID.String(),
		}).Warn("book viewing")
		return fmt.Errorf("book slot: %w", err)
	}
}

func (s *bookingService) Bookings(ctx context.Context) ([]domain.Booking, []domain.Booking, error) {
	bookings, err := s.backend.StudentBookings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list bookings: %w", err)
	}
	upcoming, past := domain.PartitionBookings(bookings, s.now())
	return upcoming, past, nil
}

func (s *bookingService) Cancel(ctx context.Context, id domain.ID) error {
	if err := s.backend.CancelBooking(ctx, id); err != nil {
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}
	return nil
}
