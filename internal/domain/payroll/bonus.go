package payroll

// Revenue targets and bonus steps, in whole rupiah. Crossing the day's
// target earns the base bonus; every further 50k of revenue adds a step.
const (
	WeekdayTarget = 1_000_000
	WeekendTarget = 1_500_000

	bonusBase     = 20_000
	bonusStep     = 5_000
	bonusStepSize = 50_000
)

// ComputeBonus returns the per-crew bonus earned for one operational day.
//
// Weekdays pay the tier amount to each crew member directly. Weekends pay
// the tier amount once, as a pool split evenly (integer division, remainder
// discarded) among all crew eligible to work that day - weekend staffing
// varies, and a fixed pool keeps payroll from growing with head count.
func ComputeBonus(dailyRevenue int64, weekend bool, activeCrew int) int64 {
	target := int64(WeekdayTarget)
	if weekend {
		target = WeekendTarget
	}
	if dailyRevenue < target {
		return 0
	}

	steps := (dailyRevenue - target) / bonusStepSize
	amount := int64(bonusBase) + steps*bonusStep

	if !weekend {
		return amount
	}
	if activeCrew < 1 {
		activeCrew = 1
	}
	return amount / int64(activeCrew)
}
