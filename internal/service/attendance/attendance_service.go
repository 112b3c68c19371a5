package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/identifier"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
	"github.com/leaveflow/leaveflow-backend-go/internal/service/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

type AttendanceService struct {
	store    *store.Store
	notifier *notification.NotificationService
	logger   *slog.Logger
	now      func() time.Time
}

func NewAttendanceService(st *store.Store, notifier *notification.NotificationService, logger *slog.Logger) *AttendanceService {
	return &AttendanceService{
		store:    st,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AttendanceService) ListAll(ctx context.Context) ([]attendance.Record, error) {
	return s.store.AttendanceAll(ctx)
}

func (s *AttendanceService) ListFor(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	return s.store.AttendanceFor(ctx, employeeID)
}

// Clock records a punch, either a real-time IN/OUT against the server clock
// or a manual (date, checkIn, checkOut) entry. The row for (employee, date)
// is upserted; existing times survive a partial punch. A late check-in
// triggers the vacation penalty exactly once per record.
func (s *AttendanceService) Clock(ctx context.Context, req attendance.ClockRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	employeeID := identifier.Canonical(req.UserID)
	now := s.now()

	var date time.Time
	var checkIn, checkOut *string
	switch req.Type {
	case attendance.ClockIn:
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		t := now.Format("15:04:05")
		checkIn = &t
	case attendance.ClockOut:
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		t := now.Format("15:04:05")
		checkOut = &t
	default:
		parsed, _ := validator.IsValidDate(req.Date)
		date = parsed
		checkIn = req.CheckIn
		checkOut = req.CheckOut
	}

	stored, err := s.store.UpsertAttendance(ctx, attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     attendance.StatusPresent,
		CreatedAt:  now,
	})
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to record attendance: %w", err)
	}

	if stored.IsLate() && !stored.PenaltyApplied {
		if err := s.applyLatePenalty(ctx, stored); err != nil {
			s.logger.Warn("failed to apply lateness penalty",
				"employee_id", employeeID, "record_id", stored.ID, "error", err)
		} else {
			stored.PenaltyApplied = true
		}
	}

	return stored, nil
}

// applyLatePenalty deducts 0.25 day from the employee's VACATION quota,
// floored at zero, marks the record so the deduction never repeats, and
// notifies the employee and their manager.
func (s *AttendanceService) applyLatePenalty(ctx context.Context, rec attendance.Record) error {
	emp, err := s.store.EmployeeByID(ctx, rec.EmployeeID)
	if err != nil {
		return err
	}

	current := emp.Quota(leave.TypeVacation, 0)
	deducted := current - attendance.PenaltyDays
	if deducted < 0 {
		deducted = 0
	}

	quotas := make(map[string]float64, len(emp.Quotas)+1)
	for k, v := range emp.Quotas {
		quotas[k] = v
	}
	quotas[leave.TypeVacation] = deducted

	if err := s.store.UpdateEmployeeQuotas(ctx, emp.ID, quotas); err != nil {
		return fmt.Errorf("failed to deduct vacation quota: %w", err)
	}
	if err := s.store.MarkAttendancePenalty(ctx, rec.ID, emp.ID); err != nil {
		return fmt.Errorf("failed to mark penalty applied: %w", err)
	}

	checkIn := ""
	if rec.CheckIn != nil {
		checkIn = *rec.CheckIn
	}
	s.notifier.Notify(ctx, emp.ID,
		"แจ้งเตือนการเข้างานสาย",
		fmt.Sprintf("คุณเข้างานเวลา %s ซึ่งเกินกำหนด 09:30 น. ระบบได้หักโควต้าลาพักร้อน 0.25 วันอัตโนมัติ", checkIn))
	if emp.ManagerID != nil {
		s.notifier.Notify(ctx, *emp.ManagerID,
			"แจ้งเตือนพนักงานเข้าสาย",
			fmt.Sprintf("%s เข้างานสายเมื่อเวลา %s (หักโควต้า 0.25 วัน)", emp.Name, checkIn))
	}
	return nil
}
