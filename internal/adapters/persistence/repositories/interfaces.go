package repositories

import (
	"context"
	"time"

	"hoteldesk/internal/core/domain"
)

// UserRepository defines user repository interface. Identifiers are
// expected pre-normalized (normalize.Email / normalize.Phone).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// RoomRepository defines room repository interface. Occupy is the only
// mutation and is atomic with respect to the availability check.
type RoomRepository interface {
	Insert(ctx context.Context, room domain.Room) error
	GetAll(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Occupy(ctx context.Context, id string) (*domain.Room, error)
	Count(ctx context.Context) (int, error)
}

// GuestRepository defines guest stay repository interface.
// The store is append-only: stays are never updated or deleted.
type GuestRepository interface {
	Create(ctx context.Context, stay *domain.GuestStay) error
	GetAll(ctx context.Context) ([]domain.GuestStay, error)
	ListByCheckinBetween(ctx context.Context, start, end time.Time) ([]domain.GuestStay, error)
}
