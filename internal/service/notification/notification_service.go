package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

type NotificationService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewNotificationService(st *store.Store, logger *slog.Logger) *NotificationService {
	return &NotificationService{store: st, logger: logger}
}

// Notify delivers one notification to an employee. Delivery is best-effort:
// a failed write is logged and swallowed so the triggering operation (a
// submission or an approval) still succeeds.
func (s *NotificationService) Notify(ctx context.Context, employeeID, title, message string) {
	req := notification.CreateNotificationRequest{
		UserID:  employeeID,
		Title:   title,
		Message: message,
	}
	title, message = req.Truncated()

	_, err := s.store.CreateNotification(ctx, notification.Notification{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Title:      title,
		Message:    message,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to deliver notification", "employee_id", employeeID, "title", title, "error", err)
	}
}

// Create stores a notification from an explicit API request.
func (s *NotificationService) Create(ctx context.Context, req notification.CreateNotificationRequest) (notification.Notification, error) {
	if err := req.Validate(); err != nil {
		return notification.Notification{}, err
	}
	title, message := req.Truncated()

	created, err := s.store.CreateNotification(ctx, notification.Notification{
		ID:         uuid.NewString(),
		EmployeeID: req.UserID,
		Title:      title,
		Message:    message,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return created, nil
}

func (s *NotificationService) ListFor(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	return s.store.NotificationsFor(ctx, employeeID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, employeeID string) error {
	return s.store.MarkNotificationRead(ctx, id, employeeID)
}
