package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Used by tests to pin "today".
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
