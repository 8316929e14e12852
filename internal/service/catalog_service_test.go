package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
)

func TestCatalogService_SeedsOnceWhenEmpty(t *testing.T) {
	b := new(mockBackend)
	svc := NewCatalogService(b, true, nil)
	ctx := context.Background()

	unis := []domain.University{{ID: "1", Name: "University of Leeds"}}
	b.On("Universities", mock.Anything).Return([]domain.University{}, nil).Once()
	b.On("Seed", mock.Anything).Return(nil).Once()
	b.On("Universities", mock.Anything).Return(unis, nil).Once()

	got, err := svc.Universities(ctx)
	require.NoError(t, err)
	assert.Equal(t, unis, got)

	// later empty results do not seed again
	b.On("Universities", mock.Anything).Return([]domain.University{}, nil).Once()
	got, err = svc.Universities(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	b.AssertNumberOfCalls(t, "Seed", 1)
	b.AssertExpectations(t)
}

func TestCatalogService_SeedDisabled(t *testing.T) {
	b := new(mockBackend)
	svc := NewCatalogService(b, false, nil)

	b.On("Universities", mock.Anything).Return([]domain.University{}, nil)

	got, err := svc.Universities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	b.AssertNotCalled(t, "Seed", mock.Anything)
}

func TestCatalogService_SeedFailureKeepsEmptyList(t *testing.T) {
	b := new(mockBackend)
	svc := NewCatalogService(b, true, nil)

	b.On("Universities", mock.Anything).Return([]domain.University{}, nil).Once()
	b.On("Seed", mock.Anything).Return(errors.New("boom")).Once()

	got, err := svc.Universities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	b.AssertExpectations(t)
}

func TestCatalogService_FeaturedCapsAtLimit(t *testing.T) {
	b := new(mockBackend)
	svc := NewCatalogService(b, false, nil)

	props := make([]domain.Property, 9)
	for i := range props {
		props[i].ID = domain.ID(string(rune('a' + i)))
	}
	b.On("SearchProperties", mock.Anything, backend.SearchFilter{}).Return(props, nil)

	got, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, FeaturedLimit)
	assert.Equal(t, domain.ID("a"), got[0].ID)
}

func TestCatalogService_SlotsGroupedAndFailureIsEmpty(t *testing.T) {
	b := new(mockBackend)
	svc := NewCatalogService(b, false, nil)
	ctx := context.Background()

	b.On("PropertySlots", mock.Anything, domain.ID("p1")).Return([]domain.Slot{
		{ID: "s1", Date: "2026-11-02", StartTime: "10:00", EndTime: "10:30"},
		{ID: "s2", Date: "2026-11-01", StartTime: "09:00", EndTime: "09:30"},
		{ID: "s3", Date: "2026-11-02", StartTime: "11:00", EndTime: "11:30"},
	}, nil)
	b.On("PropertySlots", mock.Anything, domain.ID("p2")).Return(nil, errors.New("down"))

	days, err := svc.Slots(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-11-02", days[0].Date)
	assert.Len(t, days[0].Slots, 2)

	days, err = svc.Slots(ctx, "p2")
	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestCatalogService_PropertyNotFound(t *testing.T) {
	b := new(mockBackend)
	svc := NewCatalogService(b, false, nil)

	b.On("Property", mock.Anything, domain.ID("missing")).Return(nil, &backend.APIError{StatusCode: 404, Body: "Not found"})

	_, err := svc.Property(context.Background(), "missing")
	assert.True(t, backend.IsNotFound(err))
}
