package repositories

import (
	"context"
	"testing"
	"time"

	"hoteldesk/internal/adapters/persistence/memory"
	"hoteldesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomOccupyIsCompareAndSet(t *testing.T) {
	store := memory.New()
	repo := NewRoomRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, domain.Room{ID: "101", Type: domain.RoomSingle, Status: domain.RoomAvailable, Rate: 100}))

	room, err := repo.Occupy(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomOccupied, room.Status)

	_, err = repo.Occupy(ctx, "101")
	var unavailable *domain.RoomUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, domain.RoomOccupied, unavailable.Status)

	_, err = repo.Occupy(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomInsertRejectsDuplicateID(t *testing.T) {
	store := memory.New()
	repo := NewRoomRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, domain.Room{ID: "101", Type: domain.RoomSingle, Status: domain.RoomAvailable, Rate: 100}))
	err := repo.Insert(ctx, domain.Room{ID: "101", Type: domain.RoomSuite, Status: domain.RoomAvailable, Rate: 250})
	assert.Error(t, err)
}

func TestRoomGetAllReturnsCopies(t *testing.T) {
	store := memory.New()
	repo := NewRoomRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, domain.Room{ID: "101", Type: domain.RoomSingle, Status: domain.RoomAvailable, Rate: 100}))

	rooms, err := repo.GetAll(ctx)
	require.NoError(t, err)
	rooms[0].Status = domain.RoomOccupied

	fresh, err := repo.GetByID(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, fresh.Status, "callers must not mutate store state through returned slices")
}

func TestUserGetByIdentifierMatchesEitherField(t *testing.T) {
	store := memory.New()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u-1", Email: "desk@hotel.com", Phone: "0812345678", Role: domain.RoleReceptionist}))

	byEmail, err := repo.GetByIdentifier(ctx, "desk@hotel.com")
	require.NoError(t, err)
	byPhone, err := repo.GetByIdentifier(ctx, "0812345678")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, byPhone.ID)

	_, err = repo.GetByIdentifier(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetByIdentifier(ctx, "other@hotel.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGuestListByCheckinBetweenInclusive(t *testing.T) {
	store := memory.New()
	repo := NewGuestRepository(store)
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{-time.Hour, 0, time.Hour} {
		require.NoError(t, repo.Create(ctx, &domain.GuestStay{
			ID:          []string{"g-1", "g-2", "g-3"}[i],
			Name:        "Guest",
			CheckinTime: base.Add(offset),
			Status:      domain.StayCheckedIn,
		}))
	}

	// Boundaries are inclusive on both ends.
	stays, err := repo.ListByCheckinBetween(ctx, base.Add(-time.Hour), base)
	require.NoError(t, err)
	require.Len(t, stays, 2)
	assert.Equal(t, "g-1", stays[0].ID)
	assert.Equal(t, "g-2", stays[1].ID)
}
