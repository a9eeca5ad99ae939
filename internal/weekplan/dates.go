package weekplan

import "time"

// isWeekend reports whether t falls on Saturday or Sunday.
func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// NextPracticeDay returns the first non-weekend day at or after t.
func NextPracticeDay(t time.Time) time.Time {
	for isWeekend(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AddPracticeDays advances n practice days from start, skipping weekends.
// AddPracticeDays(start, 0) normalizes start onto a weekday.
func AddPracticeDays(start time.Time, n int) time.Time {
	t := NextPracticeDay(start)
	for i := 0; i < n; i++ {
		t = NextPracticeDay(t.AddDate(0, 0, 1))
	}
	return t
}

// NextMonday returns the Monday strictly after t. Week starts always land on
// a Monday regardless of when the previous week finished.
func NextMonday(t time.Time) time.Time {
	t = t.AddDate(0, 0, 1)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
