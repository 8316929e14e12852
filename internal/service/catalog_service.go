package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
)

// FeaturedLimit caps the properties shown on the landing page.
const FeaturedLimit = 6

// CatalogService serves the public listing data: universities, search and
// property details.
type CatalogService interface {
	Universities(ctx context.Context) ([]domain.University, error)
	Search(ctx context.Context, filter backend.SearchFilter) ([]domain.Property, error)
	Featured(ctx context.Context) ([]domain.Property, error)
	Property(ctx context.Context, id domain.ID) (*domain.Property, error)
	Slots(ctx context.Context, id domain.ID) ([]domain.SlotDay, error)
}

type catalogService struct {
	backend     Backend
	logger      *logrus.Logger
	seedOnEmpty bool
	seedOnce    sync.Once
}

func NewCatalogService(b Backend, seedOnEmpty bool, logger *logrus.Logger) CatalogService {
	if logger == nil {
		logger = logrus.New()
	}
	return &catalogService{
		backend:     b,
		logger:      logger,
		seedOnEmpty: seedOnEmpty,
	}
}

// Universities lists the universities. The first time the list comes back
// empty the backend is seeded with demo data and the list fetched again.
func (s *catalogService) Universities(ctx context.Context) ([]domain.University, error) {
	universities, err := s.backend.Universities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}
	if len(universities) > 0 || !s.seedOnEmpty {
		return universities, nil
	}

	seeded := false
	s.seedOnce.Do(func() {
		if err := s.backend.Seed(ctx); err != nil {
			s.logger.WithError(err).Warn("seed backend")
			return
		}
		s.logger.Info("seeded empty backend")
		seeded = true
	})
	if !seeded {
		return universities, nil
	}

	universities, err = s.backend.Universities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list universities after seed: %w", err)
	}
	return universities, nil
}

func (s *catalogService) Search(ctx context.Context, filter backend.SearchFilter) ([]domain.Property, error) {
	properties, err := s.backend.SearchProperties(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}
	return properties, nil
}

func (s *catalogService) Featured(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.Search(ctx, backend.SearchFilter{})
	if err != nil {
		return nil, err
	}
	if len(properties) > FeaturedLimit {
		properties = properties[:FeaturedLimit]
	}
	return properties, nil
}

func (s *catalogService) Property(ctx context.Context, id domain.ID) (*domain.Property, error) {
	property, err := s.backend.Property(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property %s: %w", id, err)
	}
	return property, nil
}

// Slots returns the property's viewing slots grouped by date. A failure is
// logged and reported as no slots.
func (s *catalogService) Slots(ctx context.Context, id domain.ID) ([]domain.SlotDay, error) {
	slots, err := s.backend.PropertySlots(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("property", id.String()).Warn("list slots")
		return []domain.SlotDay{}, nil
	}
	return domain.GroupSlotsByDate(slots), nil
}
