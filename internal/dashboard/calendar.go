package dashboard

import "time"

// MonthLabel returns the short month name ("Jan", "Feb", ...) used as the
// revenue-by-month key.
func MonthLabel(t time.Time) string {
	return t.Format("Jan")
}

// SameMonth reports whether t falls in the same calendar month and year as
// the reference instant.
func SameMonth(t, ref time.Time) bool {
	return t.Month() == ref.Month() && t.Year() == ref.Year()
}

// InPreviousMonth reports whether t falls in the calendar month immediately
// preceding the reference instant's month. January references roll back to
// December of the previous year.
func InPreviousMonth(t, ref time.Time) bool {
	prevMonth := ref.Month() - 1
	prevYear := ref.Year()
	if ref.Month() == time.January {
		prevMonth = time.December
		prevYear--
	}
	return t.Month() == prevMonth && t.Year() == prevYear
}
