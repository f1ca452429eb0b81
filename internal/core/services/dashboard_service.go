package services

import (
	"context"
	"time"

	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/core/domain"
)

// DashboardService computes occupancy metrics from current state
type DashboardService struct {
	roomRepo  repositories.RoomRepository
	guestRepo repositories.GuestRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(roomRepo repositories.RoomRepository, guestRepo repositories.GuestRepository) *DashboardService {
	return &DashboardService{
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
	}
}

// Summary represents the front-desk dashboard metrics
type Summary struct {
	CurrentInHouseGuests int `json:"currentInHouseGuests"`
	TotalGuestsInHouse   int `json:"totalGuestsInHouse"`
	OccupiedRooms        int `json:"occupiedRooms"`
	AvailableRooms       int `json:"availableRooms"`
	TotalRooms           int `json:"totalRooms"`
	TodaysCheckins       int `json:"todaysCheckins"`
}

// GetSummary returns the dashboard metrics. Pure read, never mutates
// state. "Today" is the current UTC calendar date.
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stays, err := s.guestRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalRooms: len(rooms)}

	for i := range rooms {
		switch rooms[i].Status {
		case domain.RoomOccupied:
			summary.OccupiedRooms++
		case domain.RoomAvailable:
			summary.AvailableRooms++
		}
	}

	today := time.Now().UTC().Format("2006-01-02")
	for i := range stays {
		if stays[i].Status != domain.StayCheckedIn {
			continue
		}
		summary.CurrentInHouseGuests++
		summary.TotalGuestsInHouse += stays[i].Adults + stays[i].Children
		if stays[i].CheckinTime.UTC().Format("2006-01-02") == today {
			summary.TodaysCheckins++
		}
	}

	return summary, nil
}
