package domain

import "time"

// Role represents user role in the system. The front desk only has one
// role today; the claim is carried so more can be added later.
type Role string

const (
	RoleReceptionist Role = "receptionist"
)

// RoomStatus represents the occupancy state of a room
type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomOccupied  RoomStatus = "Occupied"
)

// RoomType represents the room category
type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomSuite  RoomType = "Suite"
)

// User represents a front-desk user. Exactly one of Email/Phone may be
// empty; both are stored normalized. Password holds the bcrypt hash,
// never the plaintext.
type User struct {
	ID       string
	Email    string
	Phone    string
	Password string
	Role     Role
}

// PublicUser is the user shape safe to return to clients (no hash)
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role"`
}

// ToPublic strips the password hash for API responses
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

// Room represents one room in the fixed inventory
type Room struct {
	ID     string     `json:"id"`
	Type   RoomType   `json:"type"`
	Status RoomStatus `json:"status"`
	Rate   float64    `json:"rate"`
}

// GuestStayStatus represents the lifecycle state of a stay.
// Checkout is out of scope, so every stay remains Checked-In.
type GuestStayStatus string

const (
	StayCheckedIn GuestStayStatus = "Checked-In"
)

// GuestStay represents one check-in record tying a guest to a room.
// Immutable after creation.
type GuestStay struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Contact          string          `json:"contact"`
	Email            string          `json:"email"`
	IDType           string          `json:"idType"`
	IDNumber         string          `json:"idNumber"`
	Nationality      string          `json:"nationality"`
	Adults           int             `json:"adults"`
	Children         int             `json:"children"`
	CheckinTime      time.Time       `json:"checkinTime"`
	ExpectedCheckout string          `json:"expectedCheckout"`
	RoomNumber       string          `json:"roomNumber"`
	Notes            string          `json:"notes"`
	Status           GuestStayStatus `json:"status"`
	CheckedInBy      string          `json:"checkedInBy"`
}
