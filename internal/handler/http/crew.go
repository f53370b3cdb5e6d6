package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/handler/http/response"
)

type CrewHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Resign(w http.ResponseWriter, r *http.Request)
}

type crewHandlerImpl struct {
	crewService crew.Service
}

func NewCrewHandler(crewService crew.Service) CrewHandler {
	return &crewHandlerImpl{
		crewService: crewService,
	}
}

// Create implements CrewHandler.
func (h *crewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req crew.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create crew request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.crewService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Crew member created", resp)
}

// List implements CrewHandler.
func (h *crewHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.crewService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// Update implements CrewHandler.
func (h *crewHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req crew.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update crew request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.crewService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Crew member updated", resp)
}

// Resign implements CrewHandler.
func (h *crewHandlerImpl) Resign(w http.ResponseWriter, r *http.Request) {
	resp, err := h.crewService.Resign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Crew member resigned", resp)
}
