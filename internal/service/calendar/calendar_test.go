package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leaveflow/leaveflow-backend-go/internal/service/calendar"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBusinessDays(t *testing.T) {
	holidays := map[string]string{
		"2026-01-01": "วันขึ้นปีใหม่",
		"2026-04-13": "วันสงกรานต์",
	}

	t.Run("single weekday", func(t *testing.T) {
		// 2026-02-02 is a Monday
		assert.Equal(t, 1, calendar.BusinessDays(date("2026-02-02"), date("2026-02-02"), holidays))
	})

	t.Run("full week skips the weekend", func(t *testing.T) {
		assert.Equal(t, 5, calendar.BusinessDays(date("2026-02-02"), date("2026-02-08"), holidays))
	})

	t.Run("holidays are excluded", func(t *testing.T) {
		// Jan 1 2026 is a Thursday and a holiday, so Thu is dropped
		assert.Equal(t, 1, calendar.BusinessDays(date("2026-01-01"), date("2026-01-02"), holidays))
	})

	t.Run("start after end yields zero", func(t *testing.T) {
		assert.Equal(t, 0, calendar.BusinessDays(date("2026-02-05"), date("2026-02-02"), holidays))
	})

	t.Run("weekend only yields zero", func(t *testing.T) {
		assert.Equal(t, 0, calendar.BusinessDays(date("2026-02-07"), date("2026-02-08"), holidays))
	})
}

func TestCalendarDays(t *testing.T) {
	assert.Equal(t, 1, calendar.CalendarDays(date("2026-02-02"), date("2026-02-02")))
	assert.Equal(t, 7, calendar.CalendarDays(date("2026-02-02"), date("2026-02-08")))
	assert.Equal(t, 0, calendar.CalendarDays(date("2026-02-08"), date("2026-02-02")))
}

func TestCalendarOrBusinessDays(t *testing.T) {
	holidays := map[string]string{"2026-04-13": "วันสงกรานต์"}

	// Normal period reports business days
	assert.Equal(t, 5, calendar.CalendarOrBusinessDays(date("2026-02-02"), date("2026-02-06"), holidays))

	// A weekend-only period still shows up as an absence in reports
	assert.Equal(t, 2, calendar.CalendarOrBusinessDays(date("2026-02-07"), date("2026-02-08"), holidays))

	// Holiday-only period falls back as well
	assert.Equal(t, 1, calendar.CalendarOrBusinessDays(date("2026-04-13"), date("2026-04-13"), holidays))
}

func TestIsNonWorkingDay(t *testing.T) {
	holidays := map[string]string{"2026-01-01": "วันขึ้นปีใหม่"}

	weekend, name := calendar.IsNonWorkingDay(date("2026-02-07"), holidays)
	assert.True(t, weekend)
	assert.Empty(t, name)

	weekend, name = calendar.IsNonWorkingDay(date("2026-01-01"), holidays)
	assert.False(t, weekend)
	assert.Equal(t, "วันขึ้นปีใหม่", name)
}
