package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// CronService runs the scheduled night-audit jobs: a midnight occupancy
// snapshot and an 18:00 recap of today's check-ins. Log-only; it never
// mutates state.
type CronService struct {
	dashboardService *DashboardService
	cron             *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(dashboardService *DashboardService) *CronService {
	return &CronService{
		dashboardService: dashboardService,
		cron:             cron.New(),
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// Night audit at midnight
	s.cron.AddFunc("0 0 * * *", s.logOccupancySnapshot)

	// Evening recap at 18:00
	s.cron.AddFunc("0 18 * * *", s.logTodaysCheckins)

	s.cron.Start()
	log.Println("🚀 CronService started (night audit 00:00, recap 18:00)")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) logOccupancySnapshot() {
	summary, err := s.dashboardService.GetSummary(context.Background())
	if err != nil {
		log.Printf("❌ Night audit error: %v", err)
		return
	}
	log.Printf("🌙 Night audit: %d/%d rooms occupied, %d guests in house",
		summary.OccupiedRooms, summary.TotalRooms, summary.TotalGuestsInHouse)
}

func (s *CronService) logTodaysCheckins() {
	summary, err := s.dashboardService.GetSummary(context.Background())
	if err != nil {
		log.Printf("❌ Evening recap error: %v", err)
		return
	}
	log.Printf("🏨 Evening recap: %d check-ins today", summary.TodaysCheckins)
}
