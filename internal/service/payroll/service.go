package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/domain/payroll"
	"github.com/mera-studio/studio-backend-go/internal/domain/revenue"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	"github.com/mera-studio/studio-backend-go/internal/pkg/payslip"
)

type PayrollServiceImpl struct {
	crewRepo    crew.Repository
	revenueRepo revenue.Repository
	catalog     *shift.Catalog
}

func NewPayrollService(crewRepo crew.Repository, revenueRepo revenue.Repository, catalog *shift.Catalog) payroll.Service {
	return &PayrollServiceImpl{
		crewRepo:    crewRepo,
		revenueRepo: revenueRepo,
		catalog:     catalog,
	}
}

func (s *PayrollServiceImpl) compute(ctx context.Context, year int, month time.Month) (payroll.Period, []payroll.Row, error) {
	period, err := payroll.PeriodFor(year, month)
	if err != nil {
		return payroll.Period{}, nil, err
	}

	roster, err := s.crewRepo.List(ctx)
	if err != nil {
		return payroll.Period{}, nil, fmt.Errorf("failed to load roster: %w", err)
	}

	revenueByDate, err := s.revenueRepo.RevenueByDate(ctx, period.Start, period.End)
	if err != nil {
		return payroll.Period{}, nil, fmt.Errorf("failed to load revenue: %w", err)
	}

	return period, payroll.ComputeRows(period, roster, revenueByDate, s.catalog), nil
}

// Compute implements payroll.Service.
func (s *PayrollServiceImpl) Compute(ctx context.Context, year int, month time.Month) (payroll.Summary, error) {
	period, rows, err := s.compute(ctx, year, month)
	if err != nil {
		return payroll.Summary{}, err
	}

	return payroll.Summary{
		Year:    period.Year,
		Month:   int(period.Month),
		Start:   period.Start.Format("2006-01-02"),
		End:     period.End.Format("2006-01-02"),
		PayDate: period.PayDate().Format("2006-01-02"),
		Rows:    rows,
	}, nil
}

// Payslip implements payroll.Service.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, year int, month time.Month, crewID string) ([]byte, error) {
	period, rows, err := s.compute(ctx, year, month)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.CrewID == crewID {
			return payslip.Generate(period, row)
		}
	}
	return nil, crew.ErrMemberNotFound
}
