package repositories

import (
	"context"

	"hoteldesk/internal/adapters/persistence/memory"
	"hoteldesk/internal/core/domain"
)

// userRepository implements UserRepository over the in-memory store
type userRepository struct {
	store *memory.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(store *memory.Store) UserRepository {
	return &userRepository{store: store}
}

// Create appends a new user
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	r.store.Users = append(r.store.Users, *user)
	return nil
}

// GetByIdentifier finds a user whose email OR phone equals the
// normalized identifier
func (r *userRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if identifier == "" {
		return nil, domain.ErrNotFound
	}

	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	for i := range r.store.Users {
		u := &r.store.Users[i]
		if (u.Email != "" && u.Email == identifier) || (u.Phone != "" && u.Phone == identifier) {
			found := *u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ExistsByEmail reports whether a user with the given email exists
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	for i := range r.store.Users {
		if r.store.Users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByPhone reports whether a user with the given phone exists
func (r *userRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if phone == "" {
		return false, nil
	}

	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	for i := range r.store.Users {
		if r.store.Users[i].Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of registered users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	return len(r.store.Users), nil
}
