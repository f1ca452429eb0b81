// Package memory holds the process-wide data store. The whole front desk
// runs out of one struct guarded by one RWMutex; there is no persistence
// across restarts.
package memory

import (
	"sync"

	"hoteldesk/internal/core/domain"
)

// Store is the shared in-memory state. Repositories operate on it under
// Mu; sharing a single lock keeps the room availability check and the
// Occupied write indivisible with respect to every other writer.
type Store struct {
	Mu     sync.RWMutex
	Users  []domain.User
	Rooms  []domain.Room
	Guests []domain.GuestStay
}

// New creates an empty store. Rooms and the default user are seeded by
// config.Seeder at startup.
func New() *Store {
	return &Store{}
}
