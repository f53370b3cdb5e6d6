package payroll

import (
	"testing"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// February 2026 pay period: Jan 26 - Feb 25 2026. Feb 10 is a Tuesday,
// Feb 14 a Saturday.
func testPeriod(t *testing.T) Period {
	t.Helper()
	p, err := PeriodFor(2026, time.February)
	require.NoError(t, err)
	return p
}

func rowFor(t *testing.T, rows []Row, crewID string) Row {
	t.Helper()
	for _, r := range rows {
		if r.CrewID == crewID {
			return r
		}
	}
	t.Fatalf("no row for crew %s", crewID)
	return Row{}
}

func TestComputeRows_EndToEndScenario(t *testing.T) {
	catalog := shift.NewCatalog()
	p := testPeriod(t)

	roster := []crew.Member{
		{ID: "1", Name: "Satria", Position: "Crew", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000},
		{ID: "2", Name: "Umar", Position: "Crew", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekendFull, DailyBase: 50_000},
	}

	revenue := map[string]int64{
		"2026-02-10": 1_100_000, // Tuesday
		"2026-02-14": 1_600_000, // Saturday
	}

	rows := ComputeRows(p, roster, revenue, catalog)
	require.Len(t, rows, 2)

	// Tuesday: only the weekday crew works. Revenue 1.1M is two steps over
	// the weekday target, a flat 30k per crew.
	a := rowFor(t, rows, "1")
	assert.Equal(t, 1, a.WorkDays)
	assert.Equal(t, int64(75_000), a.TotalBase)
	assert.Equal(t, int64(30_000), a.TotalBonus)
	assert.Equal(t, int64(105_000), a.Total)

	// Saturday: only the weekend crew works, and as the sole weekend
	// member takes the whole 30k pool.
	b := rowFor(t, rows, "2")
	assert.Equal(t, 1, b.WorkDays)
	assert.Equal(t, int64(50_000), b.TotalBase)
	assert.Equal(t, int64(30_000), b.TotalBonus)
	assert.Equal(t, int64(80_000), b.Total)
}

func TestComputeRows_NonOperationalDayExcluded(t *testing.T) {
	catalog := shift.NewCatalog()
	p := testPeriod(t)

	roster := []crew.Member{
		{ID: "1", Name: "Satria", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000},
	}

	// Revenue recorded as zero: the studio did not operate that Tuesday.
	revenue := map[string]int64{"2026-02-10": 0}

	rows := ComputeRows(p, roster, revenue, catalog)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].WorkDays)
	assert.Zero(t, rows[0].TotalBase)
	assert.Zero(t, rows[0].TotalBonus)
}

func TestComputeRows_WeekendPoolUsesEligibleHeadCount(t *testing.T) {
	catalog := shift.NewCatalog()
	p := testPeriod(t)

	roster := []crew.Member{
		{ID: "1", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekendFull, DailyBase: 50_000},
		{ID: "2", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekendShift1, DailyBase: 35_000},
		// Neither of these may shrink the weekend pool share:
		{ID: "3", PayStatus: crew.PayStatusIntern, ShiftID: shift.ShiftIntern},
		{ID: "4", PayStatus: crew.PayStatusResigned, ShiftID: shift.ShiftWeekendFull, DailyBase: 50_000},
		// Weekday crew are not eligible on a Saturday either:
		{ID: "5", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000},
	}

	revenue := map[string]int64{"2026-02-14": 1_500_000} // Saturday, pool 20k

	rows := ComputeRows(p, roster, revenue, catalog)

	// Two eligible weekend crew: 20k pool split as 10k each.
	assert.Equal(t, int64(10_000), rowFor(t, rows, "1").TotalBonus)
	assert.Equal(t, int64(10_000), rowFor(t, rows, "2").TotalBonus)

	// The resigned member keeps a historical row but gets nothing new...
	resigned := rowFor(t, rows, "4")
	assert.Equal(t, 1, resigned.WorkDays)

	// ...and the weekday member was simply not scheduled.
	assert.Zero(t, rowFor(t, rows, "5").WorkDays)
}

func TestComputeRows_InternAlwaysZero(t *testing.T) {
	catalog := shift.NewCatalog()
	p := testPeriod(t)

	roster := []crew.Member{
		{ID: "3", Name: "Ena", PayStatus: crew.PayStatusIntern, ShiftID: shift.ShiftIntern, ManualBonus: 50_000, ManualDeduction: 10_000},
	}
	revenue := map[string]int64{
		"2026-02-10": 2_000_000,
		"2026-02-14": 2_000_000,
	}

	rows := ComputeRows(p, roster, revenue, catalog)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{CrewID: "3", Name: "Ena", ShiftID: shift.ShiftIntern}, rows[0])
}

func TestComputeRows_UnknownShiftFailsClosed(t *testing.T) {
	catalog := shift.NewCatalog()
	p := testPeriod(t)

	roster := []crew.Member{
		{ID: "1", Name: "Typo", PayStatus: crew.PayStatusPro, ShiftID: "weekady_full", DailyBase: 75_000, ManualBonus: 5_000, ManualDeduction: 2_000},
		{ID: "2", Name: "Satria", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000},
	}
	revenue := map[string]int64{"2026-02-10": 1_000_000}

	rows := ComputeRows(p, roster, revenue, catalog)
	require.Len(t, rows, 2)

	// The typo'd member contributes zero work days but keeps manual
	// adjustments, and the rest of the roster is still computed.
	bad := rowFor(t, rows, "1")
	assert.Zero(t, bad.WorkDays)
	assert.Equal(t, int64(3_000), bad.Total)

	good := rowFor(t, rows, "2")
	assert.Equal(t, 1, good.WorkDays)
}

func TestComputeRows_ManualAdjustments(t *testing.T) {
	catalog := shift.NewCatalog()
	p := testPeriod(t)

	roster := []crew.Member{
		{ID: "1", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000, ManualBonus: 40_000, ManualDeduction: 15_000},
	}
	revenue := map[string]int64{"2026-02-10": 500_000} // operational, below target

	rows := ComputeRows(p, roster, revenue, catalog)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 1, r.WorkDays)
	assert.Equal(t, int64(75_000), r.TotalBase)
	assert.Zero(t, r.TotalBonus)
	assert.Equal(t, int64(75_000+40_000-15_000), r.Total)
}

func TestComputeRows_Idempotent(t *testing.T) {
	catalog := shift.NewCatalog()
	p := testPeriod(t)

	roster := []crew.Member{
		{ID: "1", Name: "Satria", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000, ManualBonus: 10_000},
		{ID: "2", Name: "Umar", PayStatus: crew.PayStatusPro, ShiftID: shift.ShiftWeekendFull, DailyBase: 50_000, ManualDeduction: 5_000},
		{ID: "3", Name: "Ena", PayStatus: crew.PayStatusIntern, ShiftID: shift.ShiftIntern},
	}
	revenue := map[string]int64{
		"2026-01-26": 800_000,
		"2026-02-10": 1_100_000,
		"2026-02-13": 1_550_000,
		"2026-02-14": 1_600_000,
	}

	first := ComputeRows(p, roster, revenue, catalog)
	second := ComputeRows(p, roster, revenue, catalog)
	assert.Equal(t, first, second)
}
