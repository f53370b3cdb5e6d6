package revenue

import (
	"context"
	"io"
	"time"
)

// ImportResult summarizes one CSV ingest run.
type ImportResult struct {
	Days         int `json:"days"`
	Transactions int `json:"transactions"`
	Punches      int `json:"punches"`
	// Skipped counts rows that could not be ingested; reasons are logged.
	Skipped int `json:"skipped"`
}

// Service is the finance surface: the daily ledger plus the owner's CSV
// import of historical daybook data.
type Service interface {
	// DailyLedger aggregates the pay window of the given month per day.
	DailyLedger(ctx context.Context, year int, month time.Month) ([]DayLedger, error)

	// ImportCSV ingests the owner's daybook export. Each row is one day:
	// cash and QRIS takings, an optional expense, and up to two crew
	// entries with shift and late minutes.
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
}
