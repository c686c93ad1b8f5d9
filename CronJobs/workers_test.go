package CronJobs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/YeyeJames/jiale15/Models"
)

func TestLogDaySummary(t *testing.T) {
	db, err := Models.OpenDataBase(filepath.Join(t.TempDir(), "clinic.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	summary := NewDayCloseSummary(Models.NewStore(db))

	now, err := time.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if err := summary.LogDaySummary(now); err != nil {
		t.Fatalf("log day summary: %v", err)
	}
}
