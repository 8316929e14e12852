package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertysource-web/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClient(Options{BaseURL: srv.URL + "/", Timeout: 2 * time.Second, Logger: logger})
}

func TestClient_AttachesBearerTokenFromContext(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.StudentBookings(WithToken(context.Background(), "tok-123"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	var hadAuth bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.SearchProperties(context.Background(), SearchFilter{})
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestClient_PostWithoutBodySendsEmptyObject(t *testing.T) {
	var gotBody, gotType, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		gotType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.CancelBooking(context.Background(), "b-7"))
	assert.Equal(t, "{}", gotBody)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "/student/bookings/b-7/cancel", gotPath)
}

func TestClient_NonSuccessCarriesBodyText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("Slot already booked\n"))
	})

	err := client.BookSlot(context.Background(), "p1", BookingRequest{SlotID: "s1"})
	require.Error(t, err)
	assert.Equal(t, "Slot already booked", err.Error())
	assert.True(t, IsConflict(err))
	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.False(t, IsNotFound(err))
}

func TestClient_EmptyErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Property(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "http 404", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestClient_SearchSendsOnlySetFilters(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/properties/search", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`[{"id":1,"title":"Terrace","listingType":"HOUSE","monthlyRent":450}]`))
	})

	beds := 3
	list, err := client.SearchProperties(context.Background(), SearchFilter{
		Q:           "Headingley",
		ListingType: domain.ListingHouse,
		MinBedrooms: &beds,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"q": "Headingley", "listingType": "HOUSE", "minBedrooms": float64(3)}, got)
	if assert.Len(t, list, 1) {
		assert.Equal(t, domain.ID("1"), list[0].ID)
		assert.Equal(t, 450.0, list[0].MonthlyRent)
	}
}

func TestClient_NullListBecomesEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	slots, err := client.PropertySlots(context.Background(), "p1")
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestClient_TransportErrorIsNotAPIError(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://127.0.0.1:1", Timeout: 500 * time.Millisecond})

	_, err := client.AdminSummary(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
}

func TestClient_UniversitiesCache(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/universities":
			calls.Add(1)
			_, _ = w.Write([]byte(`[{"id":"leeds","name":"University of Leeds"}]`))
		case "/seed":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	client.UseRedisCache(rdb, time.Minute)

	ctx := context.Background()
	first, err := client.Universities(ctx)
	require.NoError(t, err)
	second, err := client.Universities(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, mr.Exists(universitiesCacheKey))

	require.NoError(t, client.Seed(ctx))
	assert.False(t, mr.Exists(universitiesCacheKey))

	_, err = client.Universities(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_EmptyUniversitiesNotCached(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	client.UseRedisCache(rdb, time.Minute)

	list, err := client.Universities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.False(t, mr.Exists(universitiesCacheKey))
}

func TestIsConflict_MessageFallback(t *testing.T) {
	err := &APIError{StatusCode: http.StatusBadRequest, Body: "This slot is ALREADY BOOKED"}
	assert.True(t, IsConflict(err))
	assert.False(t, IsConflict(&APIError{StatusCode: http.StatusBadRequest, Body: "bad email"}))
	assert.False(t, IsConflict(assert.AnError))
}
