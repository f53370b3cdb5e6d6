package crew

import (
	"context"
	"fmt"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/pkg/sse"
)

type CrewServiceImpl struct {
	crew.Repository
	hub *sse.Hub
}

func NewCrewService(repo crew.Repository, hub *sse.Hub) crew.Service {
	return &CrewServiceImpl{Repository: repo, hub: hub}
}

func toResponse(m crew.Member) crew.MemberResponse {
	return crew.MemberResponse{
		ID:              m.ID,
		Name:            m.Name,
		Position:        m.Position,
		PayStatus:       string(m.PayStatus),
		ShiftID:         m.ShiftID,
		DailyBase:       m.DailyBase,
		ManualBonus:     m.ManualBonus,
		ManualDeduction: m.ManualDeduction,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       m.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements crew.Service.
func (s *CrewServiceImpl) Create(ctx context.Context, req crew.CreateMemberRequest) (crew.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return crew.MemberResponse{}, err
	}

	member := crew.Member{
		Name:      req.Name,
		Position:  req.Position,
		PayStatus: crew.PayStatus(req.PayStatus),
		ShiftID:   req.ShiftID,
		DailyBase: req.DailyBase,
	}

	created, err := s.Repository.Create(ctx, member)
	if err != nil {
		return crew.MemberResponse{}, fmt.Errorf("failed to create crew member: %w", err)
	}

	resp := toResponse(created)
	s.hub.Publish(sse.Event{Name: "crew.created", Data: resp})
	return resp, nil
}

// List implements crew.Service.
func (s *CrewServiceImpl) List(ctx context.Context) ([]crew.MemberResponse, error) {
	members, err := s.Repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", err)
	}

	responses := make([]crew.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, toResponse(m))
	}
	return responses, nil
}

// Update implements crew.Service.
func (s *CrewServiceImpl) Update(ctx context.Context, req crew.UpdateMemberRequest) (crew.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return crew.MemberResponse{}, err
	}

	member, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return crew.MemberResponse{}, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.PayStatus != nil {
		member.PayStatus = crew.PayStatus(*req.PayStatus)
	}
	if req.ShiftID != nil {
		member.ShiftID = *req.ShiftID
	}
	if req.DailyBase != nil {
		member.DailyBase = *req.DailyBase
	}
	if req.ManualBonus != nil {
		member.ManualBonus = *req.ManualBonus
	}
	if req.ManualDeduction != nil {
		member.ManualDeduction = *req.ManualDeduction
	}

	if err := s.Repository.Update(ctx, member); err != nil {
		return crew.MemberResponse{}, fmt.Errorf("failed to update crew member: %w", err)
	}

	resp := toResponse(member)
	s.hub.Publish(sse.Event{Name: "crew.updated", Data: resp})
	return resp, nil
}

// Resign implements crew.Service. The member row survives so historical
// payroll stays reproducible.
func (s *CrewServiceImpl) Resign(ctx context.Context, id string) (crew.MemberResponse, error) {
	member, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return crew.MemberResponse{}, err
	}
	if member.PayStatus == crew.PayStatusResigned {
		return crew.MemberResponse{}, crew.ErrAlreadyResigned
	}

	member.PayStatus = crew.PayStatusResigned
	if err := s.Repository.Update(ctx, member); err != nil {
		return crew.MemberResponse{}, fmt.Errorf("failed to resign crew member: %w", err)
	}

	resp := toResponse(member)
	s.hub.Publish(sse.Event{Name: "crew.resigned", Data: resp})
	return resp, nil
}
