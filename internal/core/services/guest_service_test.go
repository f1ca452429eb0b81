package services

import (
	"context"
	"sync"
	"testing"

	"hoteldesk/internal/adapters/persistence/memory"
	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/core/domain"
	"hoteldesk/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guestFixture struct {
	roomRepo  repositories.RoomRepository
	guestRepo repositories.GuestRepository
	svc       *GuestService
	claims    *jwt.Claims
}

// newGuestFixture seeds the two-room scenario: 101 Available, 202 Occupied.
func newGuestFixture(t *testing.T) *guestFixture {
	t.Helper()
	store := memory.New()
	roomRepo := repositories.NewRoomRepository(store)
	guestRepo := repositories.NewGuestRepository(store)

	ctx := context.Background()
	require.NoError(t, roomRepo.Insert(ctx, domain.Room{
		ID: "101", Type: domain.RoomSingle, Status: domain.RoomAvailable, Rate: 100,
	}))
	require.NoError(t, roomRepo.Insert(ctx, domain.Room{
		ID: "202", Type: domain.RoomDouble, Status: domain.RoomOccupied, Rate: 150,
	}))

	return &guestFixture{
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		svc:       NewGuestService(roomRepo, guestRepo),
		claims:    &jwt.Claims{UserID: "u-1", Email: "reception@hotel.com", Role: "receptionist"},
	}
}

func validInput() *CheckInInput {
	return &CheckInInput{
		Name:       "Alice",
		Contact:    "0899999999",
		RoomNumber: "101",
		Adults:     "2",
		Children:   "1",
	}
}

func TestCheckInSuccess(t *testing.T) {
	f := newGuestFixture(t)
	ctx := context.Background()

	stay, err := f.svc.CheckIn(ctx, f.claims, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, stay.ID)
	assert.Equal(t, "Alice", stay.Name)
	assert.Equal(t, "101", stay.RoomNumber)
	assert.Equal(t, 2, stay.Adults)
	assert.Equal(t, 1, stay.Children)
	assert.Equal(t, domain.StayCheckedIn, stay.Status)
	assert.Equal(t, "reception@hotel.com", stay.CheckedInBy)
	assert.False(t, stay.CheckinTime.IsZero())

	room, err := f.roomRepo.GetByID(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomOccupied, room.Status)
}

func TestCheckInAttributionFallsBackToPhone(t *testing.T) {
	f := newGuestFixture(t)
	claims := &jwt.Claims{UserID: "u-2", Phone: "0812345678", Role: "receptionist"}

	stay, err := f.svc.CheckIn(context.Background(), claims, validInput())
	require.NoError(t, err)
	assert.Equal(t, "0812345678", stay.CheckedInBy)
}

func TestCheckInValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CheckInInput)
	}{
		{"missing name", func(in *CheckInInput) { in.Name = "" }},
		{"blank name", func(in *CheckInInput) { in.Name = "   " }},
		{"missing contact", func(in *CheckInInput) { in.Contact = "" }},
		{"missing room number", func(in *CheckInInput) { in.RoomNumber = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuestFixture(t)
			input := validInput()
			tt.mutate(input)

			_, err := f.svc.CheckIn(context.Background(), f.claims, input)
			assert.ErrorIs(t, err, domain.ErrGuestFieldsMissing)

			stays, err := f.guestRepo.GetAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, stays, "failed check-in must not record a stay")
		})
	}
}

func TestCheckInUnknownRoom(t *testing.T) {
	f := newGuestFixture(t)
	input := validInput()
	input.RoomNumber = "999"

	_, err := f.svc.CheckIn(context.Background(), f.claims, input)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestCheckInOccupiedRoom(t *testing.T) {
	f := newGuestFixture(t)
	ctx := context.Background()
	input := validInput()
	input.RoomNumber = "202"

	_, err := f.svc.CheckIn(ctx, f.claims, input)

	var unavailable *domain.RoomUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "202", unavailable.RoomID)
	assert.Equal(t, domain.RoomOccupied, unavailable.Status)
	assert.Contains(t, err.Error(), "Occupied")

	stays, err := f.guestRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stays, "rejected check-in must not record a stay")
}

func TestCheckInSameRoomTwice(t *testing.T) {
	f := newGuestFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, f.claims, validInput())
	require.NoError(t, err)

	_, err = f.svc.CheckIn(ctx, f.claims, validInput())
	var unavailable *domain.RoomUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, domain.RoomOccupied, unavailable.Status)
}

func TestCheckInHeadcountDefaults(t *testing.T) {
	tests := []struct {
		name         string
		adults       string
		children     string
		wantAdults   int
		wantChildren int
	}{
		{"absent", "", "", 1, 0},
		{"unparsable", "two", "none", 1, 0},
		{"zero adults falls back", "0", "0", 1, 0},
		{"negative children falls back", "2", "-1", 2, 0},
		{"parsed", "3", "2", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuestFixture(t)
			input := validInput()
			input.Adults = tt.adults
			input.Children = tt.children

			stay, err := f.svc.CheckIn(context.Background(), f.claims, input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdults, stay.Adults)
			assert.Equal(t, tt.wantChildren, stay.Children)
		})
	}
}

// Two concurrent check-ins racing on the same room must not both
// succeed: the availability check and the Occupied write are one step
// under the store's write lock.
func TestConcurrentCheckInsSingleWinner(t *testing.T) {
	f := newGuestFixture(t)
	ctx := context.Background()

	const racers = 32
	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.CheckIn(ctx, f.claims, validInput())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var unavailable *domain.RoomUnavailableError
		assert.ErrorAs(t, err, &unavailable)
	}
	assert.Equal(t, 1, successes, "exactly one racer may win the room")

	stays, err := f.guestRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stays, 1)
}

func TestListGuestsCreationOrder(t *testing.T) {
	store := memory.New()
	roomRepo := repositories.NewRoomRepository(store)
	guestRepo := repositories.NewGuestRepository(store)
	svc := NewGuestService(roomRepo, guestRepo)
	claims := &jwt.Claims{UserID: "u-1", Email: "reception@hotel.com", Role: "receptionist"}
	ctx := context.Background()

	for _, id := range []string{"101", "102", "103"} {
		require.NoError(t, roomRepo.Insert(ctx, domain.Room{
			ID: id, Type: domain.RoomSingle, Status: domain.RoomAvailable, Rate: 100,
		}))
	}

	for i, name := range []string{"Alice", "Bob", "Carol"} {
		input := validInput()
		input.Name = name
		input.RoomNumber = []string{"101", "102", "103"}[i]
		_, err := svc.CheckIn(ctx, claims, input)
		require.NoError(t, err)
	}

	stays, err := svc.ListGuests(ctx)
	require.NoError(t, err)
	require.Len(t, stays, 3)
	assert.Equal(t, "Alice", stays[0].Name)
	assert.Equal(t, "Bob", stays[1].Name)
	assert.Equal(t, "Carol", stays[2].Name)
}
