package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/core/domain"
)

// Report periods
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// csvHeader is the fixed report column set
var csvHeader = []string{
	"Guest ID", "Name", "Contact", "Email", "Room", "Adults",
	"Children", "Checkin Time", "Expected Checkout", "Nationality",
	"Checked In By", "Notes",
}

// ReportService serializes check-in records for a time window to CSV
type ReportService struct {
	guestRepo repositories.GuestRepository
}

// NewReportService creates a new report service
func NewReportService(guestRepo repositories.GuestRepository) *ReportService {
	return &ReportService{guestRepo: guestRepo}
}

// Report holds a rendered CSV and its suggested download filename
type Report struct {
	Filename string
	CSV      []byte
}

// Generate filters guest stays checked in between the period's start
// boundary and now (inclusive) and renders them as CSV in creation
// order.
func (s *ReportService) Generate(ctx context.Context, period string) (*Report, error) {
	now := time.Now().UTC()

	start, err := periodStart(period, now)
	if err != nil {
		return nil, err
	}

	stays, err := s.guestRepo.ListByCheckinBetween(ctx, start, now)
	if err != nil {
		return nil, err
	}
	if len(stays) == 0 {
		return nil, domain.ErrNoReportData
	}

	buf, err := renderCSV(stays)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Report generated: %s (%d records, %s → %s)",
		period, len(stays), start.Format(time.RFC3339), now.Format(time.RFC3339))

	return &Report{
		Filename: fmt.Sprintf("hotel_checkin_report_%s_%s.csv", period, now.Format("2006-01-02")),
		CSV:      buf,
	}, nil
}

// periodStart computes the window's start boundary:
// daily = start of today, weekly = most recent Monday 00:00,
// monthly = first of the month, yearly = January 1.
func periodStart(period string, now time.Time) (time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodDaily:
		return midnight, nil
	case PeriodWeekly:
		// time.Weekday numbers Sunday as 0; a Sunday goes back six days.
		back := int(now.Weekday()) - 1
		if back < 0 {
			back = 6
		}
		return midnight.AddDate(0, 0, -back), nil
	case PeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case PeriodYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, domain.ErrInvalidPeriod
	}
}

// renderCSV writes the header row plus one row per stay
func renderCSV(stays []domain.GuestStay) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for i := range stays {
		g := &stays[i]
		row := []string{
			g.ID,
			g.Name,
			g.Contact,
			g.Email,
			g.RoomNumber,
			strconv.Itoa(g.Adults),
			strconv.Itoa(g.Children),
			g.CheckinTime.UTC().Format(time.RFC3339),
			g.ExpectedCheckout,
			g.Nationality,
			g.CheckedInBy,
			g.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
