package clock

import "time"

// Clock supplies the current time. It is injected rather than read from the
// time package directly so match records can carry fixed timestamps in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// New returns a Clock backed by system time
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current wall-clock time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
