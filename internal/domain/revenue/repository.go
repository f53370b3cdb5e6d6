package revenue

import (
	"context"
	"time"
)

// Repository defines data access over the transactions table.
type Repository interface {
	// Create inserts a transaction and returns it with generated fields.
	Create(ctx context.Context, txn Transaction) (Transaction, error)

	// RevenueByDate sums income per calendar date over [from, to]. Dates
	// with no income are simply absent from the map; callers treat absence
	// as zero (a non-operational day), never as an error.
	RevenueByDate(ctx context.Context, from, to time.Time) (map[string]int64, error)

	// DailyLedger aggregates revenue, expenses and payment-method splits
	// per day over [from, to]. Salary payouts are excluded from expenses so
	// the ledger shows operating numbers.
	DailyLedger(ctx context.Context, from, to time.Time) ([]DayLedger, error)
}
