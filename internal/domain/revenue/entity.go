package revenue

import "time"

// Kind splits money movements into income and outgoings.
type Kind string

const (
	KindIn  Kind = "IN"
	KindOut Kind = "OUT"
)

// Method is how the money moved.
type Method string

const (
	MethodCash Method = "CASH"
	MethodQRIS Method = "QRIS"
)

// CategorySalary marks payout transactions. The daily ledger excludes them
// from expenses so the owner sees operating numbers, not payroll noise.
const CategorySalary = "Salary"

// Transaction is one studio money movement: a sale, a booking payment or an
// expense. Payroll only reads the income side; the rest feeds the daily
// ledger.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Kind        Kind
	Category    string
	Amount      int64
	Method      Method
	CreatedAt   time.Time
}

// DayLedger aggregates one operational day for the finance view.
type DayLedger struct {
	Date     string `json:"date"`
	Revenue  int64  `json:"revenue"`
	Expenses int64  `json:"expenses"`
	Net      int64  `json:"net"`
	Cash     int64  `json:"cash"`
	QRIS     int64  `json:"qris"`
}
