package domain

type ListingType string

const (
	ListingHouse ListingType = "HOUSE"
	ListingRoom  ListingType = "ROOM"
)

// Label is the card/pill text for a listing type.
func (t ListingType) Label() string {
	if t == ListingHouse {
		return "Whole house"
	}
	return "Room in shared house"
}

// Noun is the plural used in search copy ("3 homes found").
func (t ListingType) Noun() string {
	if t == ListingHouse {
		return "homes"
	}
	return "rooms"
}

type Landlord struct {
	FullName string `json:"fullName"`
}

// Property is a listing as returned by the backend search and detail endpoints.
type Property struct {
	ID                       ID          `json:"id"`
	Title                    string      `json:"title"`
	City                     string      `json:"city"`
	AreaName                 string      `json:"areaName"`
	ListingType              ListingType `json:"listingType"`
	MonthlyRent              float64     `json:"monthlyRent"`
	HouseBedroomsTotal       int         `json:"houseBedroomsTotal"`
	Photos                   []string    `json:"photos"`
	BillsIncluded            bool        `json:"billsIncluded"`
	Furnished                bool        `json:"furnished"`
	Description              string      `json:"description"`
	DistanceToUniversityText string      `json:"distanceToUniversityText,omitempty"`
	HousematesInfo           string      `json:"housematesInfo,omitempty"`
	Landlord                 *Landlord   `json:"landlord,omitempty"`
}

func (p Property) CoverPhoto() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0]
}

func (p Property) LandlordName() string {
	if p.Landlord == nil || p.Landlord.FullName == "" {
		return "Landlord"
	}
	return p.Landlord.FullName
}

type University struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// AdminSummary holds the platform-wide counts shown on the admin dashboard.
type AdminSummary struct {
	Students   int `json:"students"`
	Landlords  int `json:"landlords"`
	Properties int `json:"properties"`
	Bookings   int `json:"bookings"`
}
