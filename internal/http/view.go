package http

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"propertysource-web/internal/domain"
)

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label   string
	Href    string
	Primary bool
	// Post links render as a small form (logout).
	Post bool
}

// MainNav is shown to everyone.
func MainNav() []NavLink {
	return []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Search homes", Href: "/homes"},
		{Label: "Search rooms", Href: "/rooms"},
		{Label: "For landlords", Href: "/landlords"},
	}
}

// AccountNav returns the role-specific links on the right of the navbar.
func AccountNav(user *domain.User) []NavLink {
	if user == nil {
		return []NavLink{
			{Label: "Log in", Href: "/login"},
			{Label: "Sign up", Href: "/signup", Primary: true},
		}
	}

	var links []NavLink
	switch user.Role {
	case domain.RoleStudent:
		links = append(links, NavLink{Label: "My viewings", Href: "/student/bookings", Primary: true})
	case domain.RoleLandlord:
		links = append(links, NavLink{Label: "Dashboard", Href: "/landlord/dashboard", Primary: true})
	case domain.RoleAdmin:
		links = append(links, NavLink{Label: "Admin", Href: "/admin", Primary: true})
	}
	return append(links, NavLink{Label: "Logout", Href: "/logout", Post: true})
}

// formatRent renders a monthly rent without trailing zeros: 450 -> "450", 450.5 -> "450.50".
func formatRent(rent float64) string {
	if rent == math.Trunc(rent) {
		return strconv.FormatFloat(rent, 'f', 0, 64)
	}
	return strconv.FormatFloat(rent, 'f', 2, 64)
}

func formatDate(value string) string {
	t, ok := domain.ParseTimestamp(value)
	if !ok {
		return "-"
	}
	return t.Format("2 Jan 2006")
}

func formatDateTime(value string) string {
	t, ok := domain.ParseTimestamp(value)
	if !ok {
		return value
	}
	return t.Format("Mon 2 Jan 2006, 15:04")
}

func formatDay(value string) string {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("Mon 2 Jan")
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

func location(p domain.Property) string {
	parts := make([]string, 0, 2)
	if p.AreaName != "" {
		parts = append(parts, p.AreaName)
	}
	if p.City != "" {
		parts = append(parts, p.City)
	}
	return strings.Join(parts, ", ")
}

func resultsSummary(count int, noun, q string) string {
	s := fmt.Sprintf("%d %s found", count, noun)
	if q != "" {
		s += ` for "` + q + `"`
	}
	return s
}

type universityPicker struct {
	Universities []domain.University
	Selected     string
}

func pickUniversity(list []domain.University, selected string) universityPicker {
	return universityPicker{Universities: list, Selected: selected}
}
