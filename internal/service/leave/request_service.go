package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/identifier"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
	"github.com/leaveflow/leaveflow-backend-go/internal/service/calendar"
	"github.com/leaveflow/leaveflow-backend-go/internal/service/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

const (
	maxReasonRunes = 2000
	maxNameRunes   = 200
)

// RequestService owns the request lifecycle: submission validation and the
// PENDING to APPROVED/REJECTED transition.
type RequestService struct {
	store    *store.Store
	notifier *notification.NotificationService
	logger   *slog.Logger
	now      func() time.Time
}

func NewRequestService(st *store.Store, notifier *notification.NotificationService, logger *slog.Logger) *RequestService {
	return &RequestService{
		store:    st,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates and files a new PENDING request, then notifies the
// employee's manager. Nothing is persisted when any check fails.
func (s *RequestService) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	employeeID := identifier.Canonical(req.EmployeeID)
	typeID := strings.ToUpper(strings.TrimSpace(req.Type))

	emp, err := s.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	types := s.store.LeaveTypes()
	if !isSelectableType(typeID, emp.Gender, types) {
		return leave.LeaveRequest{}, leave.ErrInvalidLeaveType
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	now := s.now()
	if typeID == leave.TypeSick {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if start.After(today) || end.After(today) {
			return leave.LeaveRequest{}, leave.ErrSickLeaveInFuture
		}
	}

	existing := s.store.RequestsByEmployee(employeeID)
	if HasOverlap(start, end, existing) {
		return leave.LeaveRequest{}, leave.ErrOverlappingRequest
	}

	// Vacation over-filing is allowed at submission; the balance view shows
	// the deficit instead. Bounded quotas on the other types block here.
	holidays := s.store.Holidays()
	quota := emp.Quota(typeID, leave.DefaultQuotaFor(types, typeID))
	if typeID != leave.TypeVacation && quota > 0 && quota < employee.UnlimitedQuota {
		usage := ComputeUsage(employeeID, typeID, start.Year(), existing, holidays)
		requested := float64(calendar.BusinessDays(start, end, holidays))
		if usage.Used()+requested > quota {
			return leave.LeaveRequest{}, leave.ErrQuotaExceeded
		}
	}

	created, err := s.store.CreateRequest(ctx, leave.LeaveRequest{
		ID:           fmt.Sprintf("LR%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		EmployeeID:   employeeID,
		EmployeeName: validator.TruncateRunes(strings.TrimSpace(req.EmployeeName), maxNameRunes),
		TypeID:       typeID,
		StartDate:    start,
		EndDate:      end,
		Reason:       validator.TruncateRunes(strings.TrimSpace(req.Reason), maxReasonRunes),
		Status:       leave.StatusPending,
		SubmittedAt:  now,
	})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	if emp.ManagerID != nil {
		s.notifier.Notify(ctx, *emp.ManagerID,
			"คำขอลาใหม่จากพนักงาน",
			fmt.Sprintf("%s ได้ส่งคำขอลาประเภท %s ตั้งแต่วันที่ %s",
				created.EmployeeName, typeID, created.StartDate.Format("2006-01-02")))
	}
	return created, nil
}

// Decide transitions a PENDING request to APPROVED or REJECTED. The actor
// must be an admin or the exact direct manager of the request's employee.
// An unauthorized actor gets the same not-found error as an unknown id, so
// the return surface leaks nothing; the refusal shows up in the log only.
func (s *RequestService) Decide(ctx context.Context, requestID string, dec leave.DecideRequest, actorID string, actorRole employee.Role) (leave.LeaveRequest, error) {
	if err := dec.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	req, err := s.store.RequestByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrRequestAlreadyProcessed
	}

	if actorRole != employee.RoleAdmin {
		emp, err := s.store.EmployeeByID(ctx, req.EmployeeID)
		if err != nil {
			return leave.LeaveRequest{}, err
		}
		actorID = identifier.Canonical(actorID)
		if emp.ManagerID == nil || identifier.Canonical(*emp.ManagerID) != actorID {
			s.logger.Warn("refused leave decision by non-approver",
				"request_id", requestID, "actor_id", actorID, "employee_id", req.EmployeeID)
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
	}

	status := leave.RequestStatus(dec.Status)
	updated, err := s.store.UpdateRequestStatus(ctx, requestID, status, s.now(), dec.Comment())
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update request status: %w", err)
	}

	title := "คำขอลาได้รับการอนุมัติ"
	outcome := "อนุมัติ"
	if status == leave.StatusRejected {
		title = "คำขอลาถูกปฏิเสธ"
		outcome = "ไม่อนุมัติ"
	}
	s.notifier.Notify(ctx, updated.EmployeeID, title,
		fmt.Sprintf("คำขอลาช่วงวันที่ %s ของคุณได้รับการพิจารณาแล้ว: %s",
			updated.StartDate.Format("2006-01-02"), outcome))

	return updated, nil
}

// isSelectableType accepts an active catalogue type applicable to the
// employee's gender. The standard ids stay selectable even when the
// catalogue from an older dataset does not carry them.
func isSelectableType(typeID string, gender employee.Gender, types []leave.LeaveType) bool {
	for _, t := range types {
		if t.ID == typeID {
			return t.IsActive && t.AppliesTo(gender)
		}
	}
	switch typeID {
	case leave.TypeSick, leave.TypeVacation, leave.TypePersonal, leave.TypeMaternity,
		leave.TypeSterilization, leave.TypePaternity, leave.TypeOrdination,
		leave.TypeMilitary, leave.TypeOther:
		return true
	}
	return false
}
