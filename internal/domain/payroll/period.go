package payroll

import (
	"fmt"
	"time"
)

// Period is the studio's pay cycle: the 26th of the prior calendar month
// through the 25th of the named month, inclusive. It is labeled by the
// target month, so "February" pay covers Jan 26 - Feb 25.
type Period struct {
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time
}

// PeriodFor builds the pay period for a target month. A month outside 1-12
// is the only fatal input: no partial result would be meaningful.
func PeriodFor(year int, month time.Month) (Period, error) {
	if month < time.January || month > time.December {
		return Period{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	if year < 1 {
		return Period{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}

	// time.Date normalizes month-1 for January into December of the
	// previous year.
	start := time.Date(year, month-1, 26, 0, 0, 0, 0, time.Local)
	end := time.Date(year, month, 25, 0, 0, 0, 0, time.Local)
	return Period{Year: year, Month: month, Start: start, End: end}, nil
}

// Days enumerates every calendar date in the window, in order.
func (p Period) Days() []time.Time {
	var days []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// PayDate is the 25th of the target month, the day salaries are handed out.
func (p Period) PayDate() time.Time {
	return p.End
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d (%s - %s)", p.Month, p.Year,
		p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}
