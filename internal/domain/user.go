package domain

import "time"

type Role string

const (
	RoleStudent  Role = "student"
	RoleLandlord Role = "landlord"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLandlord, RoleAdmin:
		return true
	}
	return false
}

// User is the account record the backend returns after login or signup.
type User struct {
	ID           ID     `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

func (u User) Joined() (time.Time, bool) {
	return ParseTimestamp(u.CreatedAt)
}
