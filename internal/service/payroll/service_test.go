package payroll

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/domain/payroll"
	"github.com/mera-studio/studio-backend-go/internal/domain/revenue"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
)

type fakeCrewRepo struct {
	members []crew.Member
}

func (r *fakeCrewRepo) Create(_ context.Context, m crew.Member) (crew.Member, error) { return m, nil }
func (r *fakeCrewRepo) GetByID(_ context.Context, id string) (crew.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return crew.Member{}, crew.ErrMemberNotFound
}
func (r *fakeCrewRepo) List(_ context.Context) ([]crew.Member, error) { return r.members, nil }
func (r *fakeCrewRepo) Update(_ context.Context, _ crew.Member) error { return nil }
func (r *fakeCrewRepo) AddDeduction(_ context.Context, _ string, _ int64) error {
	return nil
}

type fakeRevenueRepo struct {
	byDate map[string]int64
}

func (r *fakeRevenueRepo) Create(_ context.Context, txn revenue.Transaction) (revenue.Transaction, error) {
	return txn, nil
}
func (r *fakeRevenueRepo) RevenueByDate(_ context.Context, _, _ time.Time) (map[string]int64, error) {
	return r.byDate, nil
}
func (r *fakeRevenueRepo) DailyLedger(_ context.Context, _, _ time.Time) ([]revenue.DayLedger, error) {
	return nil, nil
}

func TestCompute(t *testing.T) {
	crewRepo := &fakeCrewRepo{members: []crew.Member{
		{ID: "crew-1", Name: "Satria", Position: "Photographer", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000},
	}}
	revenueRepo := &fakeRevenueRepo{byDate: map[string]int64{
		// Tuesday inside the Feb 2026 window, above the weekday target.
		"2026-02-10": 1_100_000,
	}}
	svc := NewPayrollService(crewRepo, revenueRepo, shift.NewCatalog())

	summary, err := svc.Compute(context.Background(), 2026, time.February)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-26", summary.Start)
	assert.Equal(t, "2026-02-25", summary.End)
	assert.Equal(t, "2026-02-25", summary.PayDate)
	require.Len(t, summary.Rows, 1)

	row := summary.Rows[0]
	assert.Equal(t, 1, row.WorkDays)
	assert.Equal(t, int64(75_000), row.TotalBase)
	assert.Equal(t, int64(30_000), row.TotalBonus)
	assert.Equal(t, int64(105_000), row.Total)
}

func TestCompute_InvalidMonth(t *testing.T) {
	svc := NewPayrollService(&fakeCrewRepo{}, &fakeRevenueRepo{}, shift.NewCatalog())

	_, err := svc.Compute(context.Background(), 2026, time.Month(13))
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestPayslip(t *testing.T) {
	crewRepo := &fakeCrewRepo{members: []crew.Member{
		{ID: "crew-1", Name: "Satria", Position: "Photographer", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000},
	}}
	revenueRepo := &fakeRevenueRepo{byDate: map[string]int64{"2026-02-10": 1_000_000}}
	svc := NewPayrollService(crewRepo, revenueRepo, shift.NewCatalog())

	pdf, err := svc.Payslip(context.Background(), 2026, time.February, "crew-1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	_, err = svc.Payslip(context.Background(), 2026, time.February, "ghost")
	assert.ErrorIs(t, err, crew.ErrMemberNotFound)
}
