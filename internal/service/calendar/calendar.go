// Package calendar computes business-day counts against the company
// holiday calendar. All functions are pure and safe for concurrent use.
package calendar

import "time"

const dateLayout = "2006-01-02"

// BusinessDays counts the days in [start, end] inclusive that are neither a
// weekend day nor a listed holiday. Returns 0 when start is after end.
func BusinessDays(start, end time.Time, holidays map[string]string) int {
	if start.After(end) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, ok := holidays[d.Format(dateLayout)]; ok {
			continue
		}
		count++
	}
	return count
}

// CalendarDays counts raw inclusive calendar days, 0 when start > end.
func CalendarDays(start, end time.Time) int {
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// CalendarOrBusinessDays is the reporting fallback: when a leave period
// falls entirely on weekends/holidays the business-day count is 0, which
// would misrepresent a real absence in a report, so fall back to calendar
// days. Quota deduction never uses this.
func CalendarOrBusinessDays(start, end time.Time, holidays map[string]string) int {
	if days := BusinessDays(start, end, holidays); days > 0 {
		return days
	}
	return CalendarDays(start, end)
}

// IsNonWorkingDay reports whether the date is a weekend and, separately,
// the holiday name when the date is a listed holiday.
func IsNonWorkingDay(date time.Time, holidays map[string]string) (weekend bool, holidayName string) {
	weekend = date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
	holidayName = holidays[date.Format(dateLayout)]
	return weekend, holidayName
}
