package services

import (
	"context"
	"log"

	"minipos/internal/pkg/calendar"

	"github.com/robfig/cron/v3"
)

// ReportService writes a scheduled revenue summary to the log, so a
// long-running register leaves an end-of-day trail without anyone
// driving the menu.
type ReportService struct {
	sales    *SalesService
	cal      *calendar.Calendar
	schedule string
	cron     *cron.Cron
}

// NewReportService creates a new report service. The schedule is a
// standard 5-field cron expression.
func NewReportService(sales *SalesService, cal *calendar.Calendar, schedule string) *ReportService {
	return &ReportService{
		sales:    sales,
		cal:      cal,
		schedule: schedule,
		cron:     cron.New(cron.WithLocation(cal.Location())),
	}
}

// Start begins the scheduled reporting
func (s *ReportService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.logRevenueSummary); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("🚀 ReportService started (schedule: %s)", s.schedule)
	return nil
}

// Stop stops the scheduled reporting
func (s *ReportService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReportService stopped")
}

func (s *ReportService) logRevenueSummary() {
	ctx := context.Background()

	buckets, err := s.sales.RevenueByPeriod(ctx, calendar.PeriodMonth)
	if err != nil {
		log.Printf("❌ Revenue summary error: %v", err)
		return
	}
	if len(buckets) == 0 {
		log.Println("📊 Revenue summary: no transactions recorded")
		return
	}

	for _, bucket := range buckets {
		log.Printf("📊 Revenue %s: %.2f", s.cal.Format(calendar.PeriodMonth, bucket.Key), bucket.Revenue)
	}
}
