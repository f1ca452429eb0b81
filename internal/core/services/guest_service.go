package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/core/domain"
	"hoteldesk/internal/pkg/jwt"

	"github.com/google/uuid"
)

// GuestService handles guest check-in, the only state-mutating write
// path in the system.
type GuestService struct {
	roomRepo  repositories.RoomRepository
	guestRepo repositories.GuestRepository
}

// NewGuestService creates a new guest service
func NewGuestService(roomRepo repositories.RoomRepository, guestRepo repositories.GuestRepository) *GuestService {
	return &GuestService{
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
	}
}

// CheckInInput represents the check-in form fields. Adults and Children
// arrive as strings because the form does; unparsable values fall back
// to 1 adult / 0 children.
type CheckInInput struct {
	Name             string `json:"name"`
	Contact          string `json:"contact"`
	Email            string `json:"email"`
	IDType           string `json:"idType"`
	IDNumber         string `json:"idNumber"`
	Nationality      string `json:"nationality"`
	Adults           string `json:"adults"`
	Children         string `json:"children"`
	ExpectedCheckout string `json:"expectedCheckout"`
	RoomNumber       string `json:"roomNumber"`
	Notes            string `json:"notes"`
}

// CheckIn transitions a room from Available to Occupied and records the
// stay, attributed to the authenticated caller.
func (s *GuestService) CheckIn(ctx context.Context, claims *jwt.Claims, input *CheckInInput) (*domain.GuestStay, error) {
	// 1. Validate required fields
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Contact) == "" ||
		strings.TrimSpace(input.RoomNumber) == "" {
		return nil, domain.ErrGuestFieldsMissing
	}

	// 2. Occupy the room. The availability check and the status write
	// are one atomic step inside the repository.
	room, err := s.roomRepo.Occupy(ctx, input.RoomNumber)
	if err != nil {
		return nil, err
	}

	// 3. Record the stay
	stay := &domain.GuestStay{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Contact:          input.Contact,
		Email:            input.Email,
		IDType:           input.IDType,
		IDNumber:         input.IDNumber,
		Nationality:      input.Nationality,
		Adults:           parseCount(input.Adults, 1),
		Children:         parseCount(input.Children, 0),
		CheckinTime:      time.Now().UTC(),
		ExpectedCheckout: input.ExpectedCheckout,
		RoomNumber:       room.ID,
		Notes:            input.Notes,
		Status:           domain.StayCheckedIn,
		CheckedInBy:      claims.Identifier(),
	}

	if err := s.guestRepo.Create(ctx, stay); err != nil {
		return nil, err
	}

	log.Printf("✅ Guest %s checked into room %s by %s", stay.Name, stay.RoomNumber, stay.CheckedInBy)
	return stay, nil
}

// ListGuests returns all guest stays in creation order
func (s *GuestService) ListGuests(ctx context.Context) ([]domain.GuestStay, error) {
	return s.guestRepo.GetAll(ctx)
}

// parseCount parses a headcount field, falling back to def when the
// value is absent or unparsable. Counts never go below the default.
func parseCount(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < def {
		return def
	}
	return n
}
