// Package holiday manages the company holiday calendar, a mapping from
// "YYYY-MM-DD" dates to Thai holiday names.
package holiday

import (
	"context"
	"errors"

	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
)

const maxNameLength = 200

var ErrHolidayNotFound = errors.New("holiday not found")

// Repository is the storage-backend contract for the holiday calendar.
type Repository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, date, name string) error
	Delete(ctx context.Context, date string) error
}

type SaveHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *SaveHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len([]rune(r.Name)) > maxNameLength {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Seed2026 is the company holiday calendar for 2026 per the annual HR
// announcement, loaded into an empty datastore.
func Seed2026() map[string]string {
	return map[string]string{
		"2026-01-01": "วันขึ้นปีใหม่",
		"2026-03-03": "วันมาฆบูชา",
		"2026-04-06": "วันจักรี",
		"2026-04-13": "วันสงกรานต์",
		"2026-04-14": "วันสงกรานต์",
		"2026-04-15": "วันสงกรานต์",
		"2026-05-01": "วันแรงงานแห่งชาติ",
		"2026-05-04": "วันฉัตรมงคล",
		"2026-06-01": "ชดเชยวันวิสาขบูชา",
		"2026-06-03": "วันเฉลิมพระชนมพรรษา สมเด็จพระนางเจ้าสุทิดาฯ",
		"2026-07-28": "วันเฉลิมพระชนมพรรษา พระบาทสมเด็จพระเจ้าอยู่หัว",
		"2026-07-29": "วันอาสาฬหบูชา",
		"2026-08-12": "วันเฉลิมพระชนมพรรษา สมเด็จพระนางเจ้าสิริกิติ์ฯ และวันแม่แห่งชาติ",
		"2026-10-13": "วันนวมินทรมหาราช",
		"2026-10-23": "วันปิยมหาราช",
		"2026-12-07": "ชดเชยวันพ่อแห่งชาติ",
		"2026-12-10": "วันรัฐธรรมนูญ",
		"2026-12-31": "วันสิ้นปี",
	}
}
