package attendance

import (
	"testing"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayShift(t *testing.T) shift.Definition {
	t.Helper()
	def, err := shift.NewCatalog().Get(shift.ShiftWeekdayFull)
	require.NoError(t, err)
	return def
}

func TestComputeLateness_GraceBoundary(t *testing.T) {
	// Weekday full time starts 12:00; with the default 10 minute grace
	// period the tolerance boundary is exactly 12:10:00.
	def := weekdayShift(t)

	tests := []struct {
		name        string
		checkIn     time.Time
		wantMinutes int
		wantPenalty int64
	}{
		{"well before start", time.Date(2026, 2, 10, 11, 45, 0, 0, time.Local), 0, 0},
		{"exactly at boundary", time.Date(2026, 2, 10, 12, 10, 0, 0, time.Local), 0, 0},
		{"one second past boundary", time.Date(2026, 2, 10, 12, 10, 1, 0, time.Local), 0, 0},
		{"one minute past boundary", time.Date(2026, 2, 10, 12, 11, 0, 0, time.Local), 1, 500},
		{"partial minutes truncate", time.Date(2026, 2, 10, 12, 13, 59, 0, time.Local), 3, 1500},
		{"an hour late", time.Date(2026, 2, 10, 13, 10, 0, 0, time.Local), 60, 30_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLateness(def, tt.checkIn, DefaultGracePeriodMinutes, DefaultPenaltyPerMinute)
			assert.Equal(t, tt.wantMinutes, got.Minutes)
			assert.Equal(t, tt.wantPenalty, got.Penalty)
		})
	}
}

func TestComputeLateness_InternNeverLate(t *testing.T) {
	def, err := shift.NewCatalog().Get(shift.ShiftIntern)
	require.NoError(t, err)

	got := ComputeLateness(def, time.Date(2026, 2, 10, 18, 0, 0, 0, time.Local), DefaultGracePeriodMinutes, DefaultPenaltyPerMinute)
	assert.Zero(t, got.Minutes)
	assert.Zero(t, got.Penalty)
}

func TestComputeLateness_CustomGraceAndRate(t *testing.T) {
	def := weekdayShift(t)

	// 30 minute grace, 1000/minute: 12:35 is 5 minutes past tolerance.
	got := ComputeLateness(def, time.Date(2026, 2, 10, 12, 35, 0, 0, time.Local), 30, 1000)
	assert.Equal(t, 5, got.Minutes)
	assert.Equal(t, int64(5000), got.Penalty)
}
