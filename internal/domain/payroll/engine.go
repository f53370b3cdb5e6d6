package payroll

import (
	"log/slog"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
)

// dateKey matches the revenue map's key format.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ComputeRows walks every calendar date of the pay period and produces one
// payroll row per crew member. It is a pure function of its inputs: the
// roster snapshot is never mutated, and identical inputs always reproduce
// identical rows regardless of crew order.
//
// Rules, per member:
//   - INTERN status yields an all-zero row.
//   - Dates with zero or missing revenue are non-operational and count for
//     nobody.
//   - A date only counts when its weekday/weekend classification matches
//     the member's shift classification.
//   - An unknown shift id fails closed: zero work days, logged as a data
//     quality warning, manual adjustments still applied. A bad record never
//     aborts the rest of the roster.
func ComputeRows(period Period, roster []crew.Member, revenueByDate map[string]int64, catalog *shift.Catalog) []Row {
	days := period.Days()

	// Head counts per classification come from the roster snapshot alone,
	// so they are computed once: only non-intern, non-resigned crew whose
	// shift could plausibly put them on duty that kind of day.
	activeWeekday, activeWeekend := activeCrewCounts(roster, catalog)

	rows := make([]Row, 0, len(roster))
	for _, member := range roster {
		rows = append(rows, computeRow(member, days, revenueByDate, catalog, activeWeekday, activeWeekend))
	}
	return rows
}

func computeRow(member crew.Member, days []time.Time, revenueByDate map[string]int64, catalog *shift.Catalog, activeWeekday, activeWeekend int) Row {
	row := Row{
		CrewID:   member.ID,
		Name:     member.Name,
		Position: member.Position,
		ShiftID:  member.ShiftID,
	}

	if member.PayStatus == crew.PayStatusIntern {
		return row
	}

	row.ManualBonus = member.ManualBonus
	row.TotalDeduction = member.ManualDeduction

	def, err := catalog.Get(member.ShiftID)
	if err != nil {
		slog.Warn("crew member references unknown shift, counting zero work days",
			"crew_id", member.ID, "shift_id", member.ShiftID)
		row.Total = row.ManualBonus - row.TotalDeduction
		return row
	}

	for _, day := range days {
		revenue := revenueByDate[dateKey(day)]
		if revenue <= 0 {
			continue // non-operational day
		}

		weekend := shift.IsWeekend(day)
		if def.IsWeekend != weekend {
			continue // not scheduled this kind of day
		}

		active := activeWeekday
		if weekend {
			active = activeWeekend
		}

		row.WorkDays++
		row.TotalBonus += ComputeBonus(revenue, weekend, active)
	}

	row.TotalBase = member.DailyBase * int64(row.WorkDays)
	row.Total = row.TotalBase + row.TotalBonus + row.ManualBonus - row.TotalDeduction
	return row
}

func activeCrewCounts(roster []crew.Member, catalog *shift.Catalog) (weekday, weekend int) {
	for _, member := range roster {
		if member.PayStatus == crew.PayStatusIntern || member.PayStatus == crew.PayStatusResigned {
			continue
		}
		def, err := catalog.Get(member.ShiftID)
		if err != nil {
			continue
		}
		if def.IsWeekend {
			weekend++
		} else {
			weekday++
		}
	}
	return weekday, weekend
}
