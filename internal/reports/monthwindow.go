package reports

import "time"

// MonthWindow is the inclusive instant range of one calendar month, in the
// location of the reference time it was derived from.
type MonthWindow struct {
	Year  int
	Month time.Month
	Days  int
	Start time.Time
	End   time.Time
}

// NewMonthWindow derives the window of the calendar month containing ref.
// Start is midnight on the 1st, End is the last representable millisecond
// of the month, Days is the day count (leap years included).
func NewMonthWindow(ref time.Time) MonthWindow {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return MonthWindow{
		Year:  start.Year(),
		Month: start.Month(),
		Days:  end.Day(),
		Start: start,
		End:   end,
	}
}

func (w MonthWindow) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && !ts.After(w.End)
}

// DayIndex maps ts to its day of month within the window, in [1, Days].
// The second return value is false when ts falls outside the window.
func (w MonthWindow) DayIndex(ts time.Time) (int, bool) {
	if !w.Contains(ts) {
		return 0, false
	}
	return ts.In(w.Start.Location()).Day(), true
}

// DayKey formats ts as the YYYY-MM-DD bucket key used in per day breakdowns.
func (w MonthWindow) DayKey(ts time.Time) string {
	return ts.In(w.Start.Location()).Format("2006-01-02")
}
