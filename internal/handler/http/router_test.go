package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mera-studio/studio-backend-go/internal/config"
	"github.com/mera-studio/studio-backend-go/internal/domain/attendance"
	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/domain/revenue"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	"github.com/mera-studio/studio-backend-go/internal/pkg/sse"
	attendanceService "github.com/mera-studio/studio-backend-go/internal/service/attendance"
	crewService "github.com/mera-studio/studio-backend-go/internal/service/crew"
	financeService "github.com/mera-studio/studio-backend-go/internal/service/finance"
	payrollService "github.com/mera-studio/studio-backend-go/internal/service/payroll"
)

type memCrewRepo struct {
	seq     int
	members map[string]crew.Member
}

func (r *memCrewRepo) Create(_ context.Context, m crew.Member) (crew.Member, error) {
	r.seq++
	m.ID = fmt.Sprintf("crew-%d", r.seq)
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	r.members[m.ID] = m
	return m, nil
}

func (r *memCrewRepo) GetByID(_ context.Context, id string) (crew.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return crew.Member{}, crew.ErrMemberNotFound
	}
	return m, nil
}

func (r *memCrewRepo) List(_ context.Context) ([]crew.Member, error) {
	out := make([]crew.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *memCrewRepo) Update(_ context.Context, m crew.Member) error {
	if _, ok := r.members[m.ID]; !ok {
		return crew.ErrMemberNotFound
	}
	r.members[m.ID] = m
	return nil
}

func (r *memCrewRepo) AddDeduction(_ context.Context, id string, amount int64) error {
	m, ok := r.members[id]
	if !ok {
		return crew.ErrMemberNotFound
	}
	m.ManualDeduction += amount
	r.members[id] = m
	return nil
}

type memAttendanceRepo struct {
	seq     int
	punches map[string]attendance.Punch
	crew    *memCrewRepo
}

func (r *memAttendanceRepo) CreateWithPenalty(ctx context.Context, p attendance.Punch) (attendance.Punch, error) {
	r.seq++
	p.ID = fmt.Sprintf("punch-%d", r.seq)
	p.CreatedAt = time.Now()
	r.punches[p.ID] = p
	if p.PenaltyAmount > 0 {
		if err := r.crew.AddDeduction(ctx, p.CrewID, p.PenaltyAmount); err != nil {
			return attendance.Punch{}, err
		}
	}
	return p, nil
}

func (r *memAttendanceRepo) GetOpenPunch(_ context.Context, crewID, dateKey string) (attendance.Punch, error) {
	for _, p := range r.punches {
		if p.CrewID == crewID && attendance.DateKey(p.Date) == dateKey && p.Open() {
			return p, nil
		}
	}
	return attendance.Punch{}, attendance.ErrNoOpenPunch
}

func (r *memAttendanceRepo) SetCheckOut(_ context.Context, punchID string, at time.Time) error {
	p, ok := r.punches[punchID]
	if !ok || !p.Open() {
		return attendance.ErrPunchNotFound
	}
	p.CheckOut = &at
	r.punches[punchID] = p
	return nil
}

func (r *memAttendanceRepo) ListByRange(_ context.Context, from, to time.Time) ([]attendance.Punch, error) {
	var out []attendance.Punch
	for _, p := range r.punches {
		if !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memAttendanceRepo) ListOpenBefore(_ context.Context, _ time.Time) ([]attendance.Punch, error) {
	return nil, nil
}

type memRevenueRepo struct{}

func (r *memRevenueRepo) Create(_ context.Context, txn revenue.Transaction) (revenue.Transaction, error) {
	return txn, nil
}
func (r *memRevenueRepo) RevenueByDate(_ context.Context, _, _ time.Time) (map[string]int64, error) {
	return map[string]int64{}, nil
}
func (r *memRevenueRepo) DailyLedger(_ context.Context, _, _ time.Time) ([]revenue.DayLedger, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) (http.Handler, *memCrewRepo) {
	t.Helper()

	cfg := &config.Config{
		App:     config.AppConfig{Env: "test", FrontendURL: "http://localhost:3000"},
		Payroll: config.PayrollConfig{GracePeriodMinutes: 10, PenaltyPerMinute: 500},
	}

	crewRepo := &memCrewRepo{members: make(map[string]crew.Member)}
	attendanceRepo := &memAttendanceRepo{punches: make(map[string]attendance.Punch), crew: crewRepo}
	revenueRepo := &memRevenueRepo{}

	catalog := shift.NewCatalog()
	hub := sse.NewHub()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, crewRepo, catalog, cfg.Payroll, hub)
	crewSvc := crewService.NewCrewService(crewRepo, hub)
	payrollSvc := payrollService.NewPayrollService(crewRepo, revenueRepo, catalog)
	financeSvc := financeService.NewFinanceService(revenueRepo, attendanceRepo, crewRepo, catalog, cfg.Payroll, hub)

	router := NewRouter(
		cfg,
		NewAttendanceHandler(attendanceSvc),
		NewCrewHandler(crewSvc),
		NewShiftHandler(catalog),
		NewPayrollHandler(payrollSvc),
		NewFinanceHandler(financeSvc),
		NewEventsHandler(hub),
	)
	return router, crewRepo
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCrewLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/crew", map[string]interface{}{
		"name":       "Satria",
		"position":   "Photographer",
		"pay_status": "PRO",
		"shift_id":   shift.ShiftWeekdayFull,
		"daily_base": 75000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data crew.MemberResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/crew/"+created.Data.ID+"/resign", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/crew/"+created.Data.ID+"/resign", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCrewCreate_ValidationError(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/crew", map[string]interface{}{
		"name":       "",
		"position":   "Editor",
		"pay_status": "FREELANCE",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestClockInTwiceConflicts(t *testing.T) {
	router, crewRepo := newTestRouter(t)

	member, err := crewRepo.Create(context.Background(), crew.Member{
		Name: "Umar", Position: "Editor", PayStatus: crew.PayStatusPro,
		ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000,
	})
	require.NoError(t, err)

	body := map[string]string{"crew_id": member.ID, "shift_id": shift.ShiftWeekdayFull}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-in", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-in", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	// The conflict still carries the existing punch for the lock screen.
	assert.Contains(t, rec.Body.String(), `"data"`)
}

func TestClockOutWithoutPunch(t *testing.T) {
	router, crewRepo := newTestRouter(t)

	member, err := crewRepo.Create(context.Background(), crew.Member{
		Name: "Umar", Position: "Editor", PayStatus: crew.PayStatusPro,
		ShiftID: shift.ShiftWeekdayFull, DailyBase: 75_000,
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-out", map[string]string{"crew_id": member.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListShifts(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/shifts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []shiftResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 5)
}

func TestPayrollBadPeriod(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/payroll?year=2026&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/payroll?year=2026&month=two", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayslipUnknownCrew(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/payroll/ghost/payslip?year=2026&month=2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
