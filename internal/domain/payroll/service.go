package payroll

import (
	"context"
	"time"
)

// Summary is one computed pay window: the window bounds plus a row per
// roster member.
type Summary struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Start   string `json:"start"`
	End     string `json:"end"`
	PayDate string `json:"pay_date"`
	Rows    []Row  `json:"rows"`
}

// Service computes payroll on demand. Nothing is persisted: the same
// period against the same ledger always reproduces the same numbers.
type Service interface {
	// Compute builds the payroll summary for the pay window ending on the
	// 25th of the given month.
	Compute(ctx context.Context, year int, month time.Month) (Summary, error)

	// Payslip renders one crew member's row for the window as a PDF.
	Payslip(ctx context.Context, year int, month time.Month, crewID string) ([]byte, error)
}
