package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// UTCClocker is the production clock; it always reports UTC.
type UTCClocker struct{}

// New returns a UTCClocker.
func New() *UTCClocker {
	return &UTCClocker{}
}

func (*UTCClocker) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clocker that always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
