package planner

import "time"

// DaySpan counts the calendar days between start and end inclusive, so
// 2024-06-01 .. 2024-06-03 spans 3 days. Never returns less than 1.
func DaySpan(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
