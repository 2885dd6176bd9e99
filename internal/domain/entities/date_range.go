package entities

import "time"

// DateLayout is the wire format of calendar dates (query params, JSON).
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date at midnight UTC, keeping the wall clock date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewDateRange normalizes both bounds to calendar dates.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: DateOf(start), End: DateOf(end)}
}

// Days is the number of calendar days covered, 0 when Start is after End.
func (r DateRange) Days() int {
	if r.Start.After(r.End) {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether the calendar date of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Covers reports whether other lies entirely within r.
func (r DateRange) Covers(other DateRange) bool {
	return r.Contains(other.Start) && r.Contains(other.End)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}
