package domain

import "time"

// Period is a closed time interval [Start, End] that ends no later than the
// moment it was validated.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod rejects periods where start is not before end or end lies after now.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrInvalidPeriod
	}
	if !start.Before(end) || end.After(now) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start.UTC(), End: end.UTC()}, nil
}

// Contains reports whether t falls inside the period, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
