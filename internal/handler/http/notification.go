package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	notificationService "github.com/leaveflow/leaveflow-backend-go/internal/service/notification"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService *notificationService.NotificationService
}

// List implements NotificationHandler. Falls back to the authenticated
// employee when no userId query parameter is given.
func (h *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		actorID, _, ok := actorFromRequest(r)
		if !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		userID = actorID
	}

	notifications, err := h.notificationService.ListFor(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notification.ToResponseList(notifications))
}

// Create implements NotificationHandler.
func (h *NotificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req notification.CreateNotificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateNotification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.notificationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notification created successfully", notification.ToResponse(created))
}

// MarkRead implements NotificationHandler. The userId query parameter
// scopes the update so an employee cannot mark another inbox read.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notification ID is required", nil)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		actorID, _, ok := actorFromRequest(r)
		if !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		userID = actorID
	}

	if err := h.notificationService.MarkRead(r.Context(), id, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

func NewNotificationHandler(service *notificationService.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: service}
}
