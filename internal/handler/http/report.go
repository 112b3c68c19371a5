package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	reportService "github.com/leaveflow/leaveflow-backend-go/internal/service/report"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	VacationLedger(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *reportService.ReportService
}

// Summary implements ReportHandler. Defaults to the current month when
// year or month query parameters are absent.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = parsed
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 12 {
			month = parsed
		}
	}

	summary := h.reportService.Summary(r.Context(), actorID, actorRole, year, month, r.URL.Query().Get("userId"))
	response.Success(w, summary)
}

// VacationLedger implements ReportHandler.
func (h *ReportHandlerImpl) VacationLedger(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		actorID, _, ok := actorFromRequest(r)
		if !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		userID = actorID
	}

	entries, total, err := h.reportService.VacationLedger(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}

func NewReportHandler(service *reportService.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: service}
}
