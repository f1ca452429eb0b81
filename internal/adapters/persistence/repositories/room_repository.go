package repositories

import (
	"context"

	"hoteldesk/internal/adapters/persistence/memory"
	"hoteldesk/internal/core/domain"
)

// roomRepository implements RoomRepository over the in-memory store
type roomRepository struct {
	store *memory.Store
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(store *memory.Store) RoomRepository {
	return &roomRepository{store: store}
}

// Insert adds a room to the inventory (seeding only)
func (r *roomRepository) Insert(ctx context.Context, room domain.Room) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for i := range r.store.Rooms {
		if r.store.Rooms[i].ID == room.ID {
			return domain.ErrInvalidInput
		}
	}
	r.store.Rooms = append(r.store.Rooms, room)
	return nil
}

// GetAll returns a copy of the full inventory in seed order
func (r *roomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	rooms := make([]domain.Room, len(r.store.Rooms))
	copy(rooms, r.store.Rooms)
	return rooms, nil
}

// GetByID returns a copy of one room
func (r *roomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	for i := range r.store.Rooms {
		if r.store.Rooms[i].ID == id {
			room := r.store.Rooms[i]
			return &room, nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

// Occupy transitions a room from Available to Occupied. The check and
// the write happen under one write lock, so two racing check-ins on the
// same room cannot both succeed.
func (r *roomRepository) Occupy(ctx context.Context, id string) (*domain.Room, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for i := range r.store.Rooms {
		if r.store.Rooms[i].ID != id {
			continue
		}
		if r.store.Rooms[i].Status != domain.RoomAvailable {
			return nil, &domain.RoomUnavailableError{
				RoomID: id,
				Status: r.store.Rooms[i].Status,
			}
		}
		r.store.Rooms[i].Status = domain.RoomOccupied
		room := r.store.Rooms[i]
		return &room, nil
	}
	return nil, domain.ErrRoomNotFound
}

// Count returns the inventory size
func (r *roomRepository) Count(ctx context.Context) (int, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	return len(r.store.Rooms), nil
}
