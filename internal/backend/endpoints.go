package backend

import (
	"context"
	"net/http"
	"net/url"

	"propertysource-web/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	FullName     string      `json:"fullName"`
	Email        string      `json:"email"`
	MobileNumber string      `json:"mobileNumber"`
	Password     string      `json:"password"`
	Role         domain.Role `json:"role"`
	CompanyName  string      `json:"companyName"`
}

// AuthResponse is what /auth/login and /auth/signup return.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// SearchFilter is the body of /properties/search. Unset bounds are omitted.
type SearchFilter struct {
	Q            string             `json:"q,omitempty"`
	UniversityID string             `json:"universityId,omitempty"`
	ListingType  domain.ListingType `json:"listingType,omitempty"`
	MinBedrooms  *int               `json:"minBedrooms,omitempty"`
	MinPrice     *float64           `json:"minPrice,omitempty"`
	MaxPrice     *float64           `json:"maxPrice,omitempty"`
}

type BookingRequest struct {
	SlotID           domain.ID `json:"slotId"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	MobileNumber     string    `json:"mobileNumber"`
	NotesFromStudent string    `json:"notesFromStudent"`
}

type SlotRequest struct {
	PropertyID domain.ID `json:"propertyId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, "auth_login", http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, "auth_signup", http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Universities lists universities, served from the cache when one is configured.
func (c *Client) Universities(ctx context.Context) ([]domain.University, error) {
	var list []domain.University
	if c.readCache(ctx, universitiesCacheKey, &list) {
		return list, nil
	}
	if err := c.do(ctx, "universities", http.MethodGet, "/universities", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.University{}
	}
	if len(list) > 0 {
		c.writeCache(ctx, universitiesCacheKey, list)
	}
	return list, nil
}

// Seed asks the backend to load its demo data set.
func (c *Client) Seed(ctx context.Context) error {
	if err := c.do(ctx, "seed", http.MethodPost, "/seed", nil, nil); err != nil {
		return err
	}
	c.dropCache(ctx, universitiesCacheKey)
	return nil
}

func (c *Client) SearchProperties(ctx context.Context, filter SearchFilter) ([]domain.Property, error) {
	var list []domain.Property
	if err := c.do(ctx, "properties_search", http.MethodPost, "/properties/search", filter, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Property{}
	}
	return list, nil
}

func (c *Client) Property(ctx context.Context, id domain.ID) (*domain.Property, error) {
	var p domain.Property
	if err := c.do(ctx, "property_get", http.MethodGet, "/properties/"+url.PathEscape(id.String()), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) PropertySlots(ctx context.Context, id domain.ID) ([]domain.Slot, error) {
	var list []domain.Slot
	if err := c.do(ctx, "property_slots", http.MethodGet, "/properties/"+url.PathEscape(id.String())+"/slots", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Slot{}
	}
	return list, nil
}

func (c *Client) BookSlot(ctx context.Context, propertyID domain.ID, req BookingRequest) error {
	return c.do(ctx, "property_book", http.MethodPost, "/properties/"+url.PathEscape(propertyID.String())+"/book", req, nil)
}

func (c *Client) StudentBookings(ctx context.Context) ([]domain.Booking, error) {
	var list []domain.Booking
	if err := c.do(ctx, "student_bookings", http.MethodGet, "/student/bookings", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Booking{}
	}
	return list, nil
}

func (c *Client) CancelBooking(ctx context.Context, id domain.ID) error {
	return c.do(ctx, "student_booking_cancel", http.MethodPost, "/student/bookings/"+url.PathEscape(id.String())+"/cancel", nil, nil)
}

func (c *Client) LandlordProperties(ctx context.Context) ([]domain.Property, error) {
	var list []domain.Property
	if err := c.do(ctx, "landlord_properties", http.MethodGet, "/landlord/properties", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Property{}
	}
	return list, nil
}

func (c *Client) CreateSlot(ctx context.Context, req SlotRequest) (*domain.Slot, error) {
	var slot domain.Slot
	if err := c.do(ctx, "landlord_slot_create", http.MethodPost, "/landlord/slots", req, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (c *Client) AdminSummary(ctx context.Context) (*domain.AdminSummary, error) {
	var s domain.AdminSummary
	if err := c.do(ctx, "admin_summary", http.MethodGet, "/admin/summary", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]domain.User, error) {
	var list []domain.User
	if err := c.do(ctx, "admin_users", http.MethodGet, "/admin/users", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.User{}
	}
	return list, nil
}

func (c *Client) AdminBookings(ctx context.Context) ([]domain.Booking, error) {
	var list []domain.Booking
	if err := c.do(ctx, "admin_bookings", http.MethodGet, "/admin/bookings", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Booking{}
	}
	return list, nil
}
