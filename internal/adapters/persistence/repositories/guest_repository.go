package repositories

import (
	"context"
	"time"

	"hoteldesk/internal/adapters/persistence/memory"
	"hoteldesk/internal/core/domain"
)

// guestRepository implements GuestRepository over the in-memory store
type guestRepository struct {
	store *memory.Store
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(store *memory.Store) GuestRepository {
	return &guestRepository{store: store}
}

// Create appends a new guest stay
func (r *guestRepository) Create(ctx context.Context, stay *domain.GuestStay) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	r.store.Guests = append(r.store.Guests, *stay)
	return nil
}

// GetAll returns all guest stays in creation order
func (r *guestRepository) GetAll(ctx context.Context) ([]domain.GuestStay, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	stays := make([]domain.GuestStay, len(r.store.Guests))
	copy(stays, r.store.Guests)
	return stays, nil
}

// ListByCheckinBetween returns stays whose check-in time falls within
// [start, end] inclusive, in creation order
func (r *guestRepository) ListByCheckinBetween(ctx context.Context, start, end time.Time) ([]domain.GuestStay, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	var stays []domain.GuestStay
	for i := range r.store.Guests {
		t := r.store.Guests[i].CheckinTime
		if t.Before(start) || t.After(end) {
			continue
		}
		stays = append(stays, r.store.Guests[i])
	}
	return stays, nil
}
