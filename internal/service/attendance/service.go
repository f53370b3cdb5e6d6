package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/config"
	"github.com/mera-studio/studio-backend-go/internal/domain/attendance"
	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	"github.com/mera-studio/studio-backend-go/internal/pkg/sse"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	crewRepo crew.Repository
	catalog  *shift.Catalog
	payroll  config.PayrollConfig
	hub      *sse.Hub

	// punchLocks serializes clock-in/clock-out per (crew, work day) so a
	// double-tapped button cannot open two punches for the same day.
	mu         sync.Mutex
	punchLocks map[string]*sync.Mutex
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	crewRepo crew.Repository,
	catalog *shift.Catalog,
	payroll config.PayrollConfig,
	hub *sse.Hub,
) attendance.Service {
	return &AttendanceServiceImpl{
		Repository: attendanceRepo,
		crewRepo:   crewRepo,
		catalog:    catalog,
		payroll:    payroll,
		hub:        hub,
		punchLocks: make(map[string]*sync.Mutex),
	}
}

func (a *AttendanceServiceImpl) lockFor(crewID, dateKey string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := crewID + "|" + dateKey
	lock, ok := a.punchLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		a.punchLocks[key] = lock
	}
	return lock
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func toResponse(p attendance.Punch) attendance.PunchResponse {
	return attendance.PunchResponse{
		ID:            p.ID,
		CrewID:        p.CrewID,
		CrewName:      p.CrewName,
		Date:          attendance.DateKey(p.Date),
		ShiftID:       p.ShiftID,
		CheckIn:       p.CheckIn.Format(time.RFC3339),
		CheckOut:      timePtrToString(p.CheckOut),
		LateMinutes:   p.LateMinutes,
		PenaltyAmount: p.PenaltyAmount,
	}
}

// ClockIn implements attendance.Service.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	member, err := a.crewRepo.GetByID(ctx, req.CrewID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	def, err := a.catalog.Get(req.ShiftID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	dateKey := attendance.DateKey(req.At)
	lock := a.lockFor(req.CrewID, dateKey)
	lock.Lock()
	defer lock.Unlock()

	existing, err := a.Repository.GetOpenPunch(ctx, req.CrewID, dateKey)
	if err == nil {
		return toResponse(existing), attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrNoOpenPunch) {
		return attendance.PunchResponse{}, fmt.Errorf("failed to check open punch: %w", err)
	}

	late := attendance.ComputeLateness(def, req.At, a.payroll.GracePeriodMinutes, a.payroll.PenaltyPerMinute)
	if member.PayStatus == crew.PayStatusIntern {
		// Interns carry no start time and no penalty regardless of the
		// shift they clock into.
		late = attendance.Lateness{}
	}

	punch := attendance.Punch{
		CrewID:        req.CrewID,
		Date:          req.At,
		ShiftID:       req.ShiftID,
		CheckIn:       req.At,
		LateMinutes:   late.Minutes,
		PenaltyAmount: late.Penalty,
	}

	created, err := a.Repository.CreateWithPenalty(ctx, punch)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}
	created.CrewName = &member.Name

	resp := toResponse(created)
	a.hub.Publish(sse.Event{Name: "attendance.clock_in", Data: resp})
	return resp, nil
}

// ClockOut implements attendance.Service.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	dateKey := attendance.DateKey(req.At)
	lock := a.lockFor(req.CrewID, dateKey)
	lock.Lock()
	defer lock.Unlock()

	punch, err := a.Repository.GetOpenPunch(ctx, req.CrewID, dateKey)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	if err := a.Repository.SetCheckOut(ctx, punch.ID, req.At); err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to close punch: %w", err)
	}

	at := req.At
	punch.CheckOut = &at

	resp := toResponse(punch)
	a.hub.Publish(sse.Event{Name: "attendance.clock_out", Data: resp})
	return resp, nil
}

// List implements attendance.Service.
func (a *AttendanceServiceImpl) List(ctx context.Context, from, to time.Time) ([]attendance.PunchResponse, error) {
	punches, err := a.Repository.ListByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]attendance.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}

// RecommendShift implements attendance.Service.
func (a *AttendanceServiceImpl) RecommendShift(at time.Time) string {
	return a.catalog.Recommend(at).ID
}
