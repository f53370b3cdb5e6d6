package http

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	"github.com/mera-studio/studio-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	catalog *shift.Catalog
}

func NewShiftHandler(catalog *shift.Catalog) ShiftHandler {
	return &shiftHandlerImpl{catalog: catalog}
}

type shiftResponse struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	StartTime    string `json:"start_time,omitempty"`
	IsWeekend    bool   `json:"is_weekend"`
	DailyBase    int64  `json:"daily_base"`
	HasStartTime bool   `json:"has_start_time"`
}

// List implements ShiftHandler.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	defs := h.catalog.All()
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })

	shifts := make([]shiftResponse, 0, len(defs))
	for _, def := range defs {
		item := shiftResponse{
			ID:           def.ID,
			Label:        def.Label,
			IsWeekend:    def.IsWeekend,
			DailyBase:    def.DailyBase,
			HasStartTime: def.HasStartTime,
		}
		if def.HasStartTime {
			item.StartTime = fmt.Sprintf("%02d:%02d", def.StartHour, def.StartMinute)
		}
		shifts = append(shifts, item)
	}

	response.Success(w, shifts)
}
