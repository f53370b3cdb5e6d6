package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mera-studio/studio-backend-go/internal/domain/revenue"
	"github.com/mera-studio/studio-backend-go/internal/pkg/database"
)

type revenueRepository struct {
	db *database.DB
}

func NewRevenueRepository(db *database.DB) revenue.Repository {
	return &revenueRepository{db: db}
}

// Create implements revenue.Repository.
func (r *revenueRepository) Create(ctx context.Context, txn revenue.Transaction) (revenue.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	txn.ID = uuid.NewString()

	query := `
		INSERT INTO transactions (
			id, txn_date, description, kind, category, amount, method
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		txn.ID,
		txn.Date,
		txn.Description,
		txn.Kind,
		txn.Category,
		txn.Amount,
		txn.Method,
	).Scan(&txn.CreatedAt)

	if err != nil {
		return revenue.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txn, nil
}

// RevenueByDate implements revenue.Repository.
func (r *revenueRepository) RevenueByDate(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT txn_date, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE kind = 'IN' AND txn_date BETWEEN $1 AND $2
		GROUP BY txn_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	defer rows.Close()

	byDate := make(map[string]int64)
	for rows.Next() {
		var day time.Time
		var total int64
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		byDate[day.Format("2006-01-02")] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue rows: %w", err)
	}
	return byDate, nil
}

// DailyLedger implements revenue.Repository. Salary payouts stay out of the
// expense column so the ledger reflects operating numbers only.
func (r *revenueRepository) DailyLedger(ctx context.Context, from, to time.Time) ([]revenue.DayLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT txn_date,
			   COALESCE(SUM(amount) FILTER (WHERE kind = 'IN'), 0) AS revenue,
			   COALESCE(SUM(amount) FILTER (WHERE kind = 'OUT' AND category <> $3), 0) AS expenses,
			   COALESCE(SUM(amount) FILTER (WHERE kind = 'IN' AND method = 'CASH'), 0) AS cash,
			   COALESCE(SUM(amount) FILTER (WHERE kind = 'IN' AND method = 'QRIS'), 0) AS qris
		FROM transactions
		WHERE txn_date BETWEEN $1 AND $2
		GROUP BY txn_date
		ORDER BY txn_date
	`

	rows, err := q.Query(ctx, query, from, to, revenue.CategorySalary)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily ledger: %w", err)
	}
	defer rows.Close()

	var ledger []revenue.DayLedger
	for rows.Next() {
		var day time.Time
		var entry revenue.DayLedger
		if err := rows.Scan(&day, &entry.Revenue, &entry.Expenses, &entry.Cash, &entry.QRIS); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		entry.Date = day.Format("2006-01-02")
		entry.Net = entry.Revenue - entry.Expenses
		ledger = append(ledger, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger rows: %w", err)
	}
	return ledger, nil
}
