package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/notification"
)

type notificationRepository struct {
	db *DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *DB) notification.Repository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, message, is_read, created_at
		 FROM notifications WHERE user_id = ? ORDER BY created_at DESC`,
		employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var out []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var isRead int
		var createdAt string
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.Title, &n.Message, &isRead, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.IsRead = isRead != 0
		n.CreatedAt = parseTime(createdAt)
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, user_id, title, message, is_read, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		n.ID, n.EmployeeID, n.Title, n.Message, formatTime(n.CreatedAt))
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string, employeeID string) error {
	var err error
	if employeeID != "" {
		_, err = r.db.ExecContext(ctx,
			`UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`, id, employeeID)
	} else {
		_, err = r.db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	}
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
