package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	attendanceService "github.com/leaveflow/leaveflow-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Clock(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceService.AttendanceService
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if userID := r.URL.Query().Get("userId"); userID != "" {
		records, err := h.attendanceService.ListFor(ctx, userID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, attendance.ToResponseList(records))
		return
	}

	records, err := h.attendanceService.ListAll(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.ToResponseList(records))
}

// Clock implements AttendanceHandler. Handles both live clock in/out
// and manual record entry, upserting by (employee, date).
func (h *AttendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.UserID == "" {
		actorID, _, ok := actorFromRequest(r)
		if !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		req.UserID = actorID
	}

	record, err := h.attendanceService.Clock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToResponse(record))
}

func NewAttendanceHandler(service *attendanceService.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: service}
}
