package finance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/config"
	"github.com/mera-studio/studio-backend-go/internal/domain/attendance"
	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/domain/payroll"
	"github.com/mera-studio/studio-backend-go/internal/domain/revenue"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	"github.com/mera-studio/studio-backend-go/internal/pkg/sse"
	"github.com/mera-studio/studio-backend-go/internal/pkg/validator"
)

type FinanceServiceImpl struct {
	revenueRepo    revenue.Repository
	attendanceRepo attendance.Repository
	crewRepo       crew.Repository
	catalog        *shift.Catalog
	payroll        config.PayrollConfig
	hub            *sse.Hub
}

func NewFinanceService(
	revenueRepo revenue.Repository,
	attendanceRepo attendance.Repository,
	crewRepo crew.Repository,
	catalog *shift.Catalog,
	payrollCfg config.PayrollConfig,
	hub *sse.Hub,
) revenue.Service {
	return &FinanceServiceImpl{
		revenueRepo:    revenueRepo,
		attendanceRepo: attendanceRepo,
		crewRepo:       crewRepo,
		catalog:        catalog,
		payroll:        payrollCfg,
		hub:            hub,
	}
}

// DailyLedger implements revenue.Service.
func (s *FinanceServiceImpl) DailyLedger(ctx context.Context, year int, month time.Month) ([]revenue.DayLedger, error) {
	period, err := payroll.PeriodFor(year, month)
	if err != nil {
		return nil, err
	}

	ledger, err := s.revenueRepo.DailyLedger(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily ledger: %w", err)
	}
	return ledger, nil
}

// csvColumns maps the daybook export's header names to record indexes.
func csvColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// amount parses a whole-rupiah column. Empty cells mean zero; thousands
// separators from spreadsheet exports are tolerated.
func amount(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	cleaned := strings.NewReplacer(".", "", ",", "", " ", "").Replace(raw)
	return strconv.ParseInt(cleaned, 10, 64)
}

// ImportCSV implements revenue.Service. Each row is one daybook day:
//
//	Tanggal,Cash,QRIS,Pengeluaran,Catatan Pengeluaran,
//	Crew_1,Shift_1,Telat_1,Crew_2,Shift_2,Telat_2
//
// Malformed rows are skipped and logged rather than aborting the run, so a
// half-clean spreadsheet still imports its good days.
func (s *FinanceServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (revenue.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return revenue.ImportResult{}, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := csvColumns(header)
	if _, ok := cols["Tanggal"]; !ok {
		return revenue.ImportResult{}, fmt.Errorf("CSV header is missing the Tanggal column")
	}

	roster, err := s.crewRepo.List(ctx)
	if err != nil {
		return revenue.ImportResult{}, fmt.Errorf("failed to load roster: %w", err)
	}
	byName := make(map[string]crew.Member, len(roster))
	for _, m := range roster {
		byName[strings.ToLower(m.Name)] = m
	}

	var result revenue.ImportResult
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		date, err := validator.ParseDate(field(record, cols, "Tanggal"))
		if err != nil {
			slog.Warn("skipping CSV row with bad date", "line", line, "error", err)
			result.Skipped++
			continue
		}
		result.Days++

		if err := s.importMoney(ctx, record, cols, date, line, &result); err != nil {
			return result, err
		}

		for _, n := range []string{"1", "2"} {
			created, err := s.importPunch(ctx, record, cols, byName, date, n, line)
			if err != nil {
				return result, err
			}
			switch created {
			case punchCreated:
				result.Punches++
			case punchSkipped:
				result.Skipped++
			}
		}
	}

	s.hub.Publish(sse.Event{Name: "finance.imported", Data: result})
	return result, nil
}

func (s *FinanceServiceImpl) importMoney(ctx context.Context, record []string, cols map[string]int, date time.Time, line int, result *revenue.ImportResult) error {
	type moneyColumn struct {
		name        string
		kind        revenue.Kind
		method      revenue.Method
		category    string
		description string
	}
	columns := []moneyColumn{
		{"Cash", revenue.KindIn, revenue.MethodCash, "Sales", "Pendapatan cash"},
		{"QRIS", revenue.KindIn, revenue.MethodQRIS, "Sales", "Pendapatan QRIS"},
		{"Pengeluaran", revenue.KindOut, revenue.MethodCash, "Operational", field(record, cols, "Catatan Pengeluaran")},
	}

	for _, col := range columns {
		value, err := amount(field(record, cols, col.name))
		if err != nil {
			slog.Warn("skipping unparseable amount", "line", line, "column", col.name, "error", err)
			result.Skipped++
			continue
		}
		if value <= 0 {
			continue
		}

		description := col.description
		if description == "" {
			description = col.name
		}
		_, err = s.revenueRepo.Create(ctx, revenue.Transaction{
			Date:        date,
			Description: description,
			Kind:        col.kind,
			Category:    col.category,
			Amount:      value,
			Method:      col.method,
		})
		if err != nil {
			return fmt.Errorf("failed to import transaction at line %d: %w", line, err)
		}
		result.Transactions++
	}
	return nil
}

type punchOutcome int

const (
	punchAbsent punchOutcome = iota
	punchCreated
	punchSkipped
)

func (s *FinanceServiceImpl) importPunch(ctx context.Context, record []string, cols map[string]int, byName map[string]crew.Member, date time.Time, n string, line int) (punchOutcome, error) {
	name := field(record, cols, "Crew_"+n)
	if name == "" {
		return punchAbsent, nil
	}

	member, ok := byName[strings.ToLower(name)]
	if !ok {
		slog.Warn("skipping punch for unknown crew name", "line", line, "name", name)
		return punchSkipped, nil
	}

	shiftID := field(record, cols, "Shift_"+n)
	def, err := s.catalog.Get(shiftID)
	if err != nil {
		slog.Warn("skipping punch with unknown shift", "line", line, "shift", shiftID)
		return punchSkipped, nil
	}

	lateMinutes, err := amount(field(record, cols, "Telat_"+n))
	if err != nil {
		slog.Warn("skipping punch with unparseable late minutes", "line", line, "error", err)
		return punchSkipped, nil
	}

	// Reconstruct the check-in the daybook implies: shift start plus grace
	// plus the recorded late minutes. Shifts without a start time (interns)
	// get a nominal midday check-in.
	checkIn := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.Local)
	if def.HasStartTime {
		checkIn = time.Date(date.Year(), date.Month(), date.Day(), def.StartHour, def.StartMinute, 0, 0, time.Local)
		if lateMinutes > 0 {
			checkIn = checkIn.Add(time.Duration(int64(s.payroll.GracePeriodMinutes)+lateMinutes) * time.Minute)
		}
	}

	var penalty int64
	if def.HasStartTime && member.PayStatus != crew.PayStatusIntern {
		penalty = lateMinutes * s.payroll.PenaltyPerMinute
	} else {
		lateMinutes = 0
	}

	_, err = s.attendanceRepo.CreateWithPenalty(ctx, attendance.Punch{
		CrewID:        member.ID,
		Date:          date,
		ShiftID:       shiftID,
		CheckIn:       checkIn,
		LateMinutes:   int(lateMinutes),
		PenaltyAmount: penalty,
	})
	if err != nil {
		return punchAbsent, fmt.Errorf("failed to import punch at line %d: %w", line, err)
	}
	return punchCreated, nil
}
