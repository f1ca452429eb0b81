package config

import (
	"context"
	"log"

	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/core/domain"
	"hoteldesk/internal/pkg/normalize"
	"hoteldesk/internal/pkg/password"

	"github.com/google/uuid"
)

// Seeder loads the fixed room inventory and ensures the default
// front-desk account exists. Runs once at startup against the empty
// in-memory store.
type Seeder struct {
	userRepo repositories.UserRepository
	roomRepo repositories.RoomRepository
	cfg      *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo repositories.UserRepository, roomRepo repositories.RoomRepository, cfg *Config) *Seeder {
	return &Seeder{
		userRepo: userRepo,
		roomRepo: roomRepo,
		cfg:      cfg,
	}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Seeding in-memory store...")

	if err := s.seedRooms(ctx); err != nil {
		return err
	}
	if err := s.seedDefaultUser(ctx); err != nil {
		log.Printf("⚠️ Default user seeder skipped: %v", err)
	}

	log.Println("✅ Store seeding completed")
	return nil
}

// seedRooms loads the fixed inventory. 202 starts Occupied so the
// dashboard has something to show on a fresh start.
func (s *Seeder) seedRooms(ctx context.Context) error {
	rooms := []domain.Room{
		{ID: "101", Type: domain.RoomSingle, Status: domain.RoomAvailable, Rate: 100},
		{ID: "102", Type: domain.RoomSingle, Status: domain.RoomAvailable, Rate: 100},
		{ID: "201", Type: domain.RoomDouble, Status: domain.RoomAvailable, Rate: 150},
		{ID: "202", Type: domain.RoomDouble, Status: domain.RoomOccupied, Rate: 150},
		{ID: "301", Type: domain.RoomSuite, Status: domain.RoomAvailable, Rate: 250},
	}

	for _, room := range rooms {
		if err := s.roomRepo.Insert(ctx, room); err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d rooms", len(rooms))
	return nil
}

// seedDefaultUser ensures the default receptionist account.
// This is for development/testing only; register real accounts
// through the API.
func (s *Seeder) seedDefaultUser(ctx context.Context) error {
	email := normalize.Email(s.cfg.Seed.UserEmail)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := password.Hash(s.cfg.Seed.UserPassword)
	if err != nil {
		return err
	}

	user := &domain.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: hashedPassword,
		Role:     domain.RoleReceptionist,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ Default user ensured: %s", email)
	return nil
}
