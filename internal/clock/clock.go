// Package clock provides the time source for everything date-derived, so
// tests can pin "today" to a fixed calendar day.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// FixedDate builds a Fixed clock at local noon on the given day. Noon keeps
// day arithmetic clear of DST edges.
func FixedDate(year int, month time.Month, day int) Fixed {
	return Fixed{T: time.Date(year, month, day, 12, 0, 0, 0, time.Local)}
}
