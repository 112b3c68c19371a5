package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/holiday"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	store *store.Store
}

// List implements HolidayHandler. Returns the calendar as a date to
// name map, keyed by YYYY-MM-DD.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Holidays())
}

// Save implements HolidayHandler. Creates or renames a holiday.
func (h *HolidayHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req holiday.SaveHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.store.UpsertHoliday(r.Context(), req.Date, req.Name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.store.Holidays())
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if date == "" {
		response.BadRequest(w, "Holiday date is required", nil)
		return
	}

	if err := h.store.DeleteHoliday(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.store.Holidays())
}

func NewHolidayHandler(st *store.Store) HolidayHandler {
	return &HolidayHandlerImpl{store: st}
}
