package CronJobs

import (
	"log"
	"time"

	"github.com/YeyeJames/jiale15/Models"

	"github.com/go-co-op/gocron"
)

// DayCloseSummary logs the day's appointment count and collected revenue at
// closing time so the desk has a written record without opening the app.
type DayCloseSummary struct {
	Store *Models.Store
}

func NewDayCloseSummary(store *Models.Store) *DayCloseSummary {
	return &DayCloseSummary{
		Store: store,
	}
}

// StartSummaryCron starts the cron job that prints the day-close summary.
func (dc *DayCloseSummary) StartSummaryCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	// Clinic closes at 21:00; summarize half an hour later.
	scheduler.Every(1).Day().At("21:30").Do(func() {
		if err := dc.LogDaySummary(time.Now()); err != nil {
			log.Printf("Error logging day-close summary: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Day-close summary cron job started")

	return scheduler
}

func (dc *DayCloseSummary) LogDaySummary(now time.Time) error {
	date := now.Format("2006-01-02")

	stats, err := dc.Store.GetDayStats(date)
	if err != nil {
		return err
	}

	log.Printf("Day close %s: %d appointments, $%.0f collected", date, stats.AppointmentCount, stats.TotalRevenue)
	return nil
}
