package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
	leaveService "github.com/leaveflow/leaveflow-backend-go/internal/service/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

type LeaveHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)
	ReplaceTypes(w http.ResponseWriter, r *http.Request)

	ListRequests(w http.ResponseWriter, r *http.Request)
	SubmitRequest(w http.ResponseWriter, r *http.Request)
	DecideRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	requestService *leaveService.RequestService
	store          *store.Store
}

// actorFromRequest extracts the authenticated employee id and role from
// the verified JWT on the request context.
func actorFromRequest(r *http.Request) (string, employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", false
	}
	return jwt.ClaimsFromMap(claims)
}

// ListTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, leave.ToTypeResponseList(l.store.LeaveTypes()))
}

// ReplaceTypes implements LeaveHandler. The full catalog is replaced in
// one call, matching the admin settings screen which always saves the
// whole list.
func (l *LeaveHandlerImpl) ReplaceTypes(w http.ResponseWriter, r *http.Request) {
	var reqs []leave.SaveLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		slog.Error("ReplaceTypes decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	types := make([]leave.LeaveType, 0, len(reqs))
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			response.HandleError(w, err)
			return
		}
		active := true
		if reqs[i].IsActive != nil {
			active = *reqs[i].IsActive
		}
		types = append(types, leave.LeaveType{
			ID:           reqs[i].ID,
			Label:        reqs[i].Label,
			ApplicableTo: leave.Applicability(reqs[i].ApplicableTo),
			DefaultQuota: reqs[i].DefaultQuota,
			Order:        i,
			IsActive:     active,
		})
	}

	saved, err := l.store.ReplaceLeaveTypes(r.Context(), types)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToTypeResponseList(saved))
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	if userID := r.URL.Query().Get("userId"); userID != "" {
		response.Success(w, leave.ToRequestResponseList(l.store.RequestsByEmployee(userID)))
		return
	}
	response.Success(w, leave.ToRequestResponseList(l.store.Requests()))
}

// SubmitRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeID == "" {
		actorID, _, ok := actorFromRequest(r)
		if !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		req.EmployeeID = actorID
	}

	created, err := l.requestService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.ToRequestResponse(created))
}

// DecideRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DecideRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	actorID, actorRole, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var dec leave.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&dec); err != nil {
		slog.Error("DecideRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := l.requestService.Decide(r.Context(), requestID, dec, actorID, actorRole)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToRequestResponse(updated))
}

func NewLeaveHandler(requests *leaveService.RequestService, st *store.Store) LeaveHandler {
	return &LeaveHandlerImpl{requestService: requests, store: st}
}
