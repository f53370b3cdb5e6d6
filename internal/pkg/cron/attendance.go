package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/domain/attendance"
)

// Studio closing hour; dangling punches are closed as if the crew member
// left when the studio did.
const closingHour = 21

// AttendanceJobs holds the attendance housekeeping tasks.
type AttendanceJobs struct {
	attendanceRepo attendance.Repository
}

func NewAttendanceJobs(attendanceRepo attendance.Repository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

// CloseDanglingPunches closes punches from past work days that never got a
// check-out. The attendance-as-lock-screen flow leaves these behind whenever
// the last crew member walks out without logging off.
func (j *AttendanceJobs) CloseDanglingPunches(ctx context.Context) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	open, err := j.attendanceRepo.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("list open punches: %w", err)
	}

	for _, punch := range open {
		closeAt := time.Date(punch.Date.Year(), punch.Date.Month(), punch.Date.Day(),
			closingHour, 0, 0, 0, punch.Date.Location())

		if err := j.attendanceRepo.SetCheckOut(ctx, punch.ID, closeAt); err != nil {
			slog.Error("failed to auto-close punch", "punch_id", punch.ID, "error", err)
			continue
		}
		slog.Info("auto-closed dangling punch",
			"punch_id", punch.ID, "crew_id", punch.CrewID, "date", attendance.DateKey(punch.Date))
	}
	return nil
}
