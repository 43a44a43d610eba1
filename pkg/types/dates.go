package types

import "time"

// displayDateLayout matches the calendar-date format shown in the journal
// and on plant cards, e.g. "Aug 25, 2026".
const displayDateLayout = "Jan 2, 2006"

// DisplayDate formats t as a journal display date.
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// Today returns the current date in display format.
func Today() string {
	return DisplayDate(time.Now())
}
