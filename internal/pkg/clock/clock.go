package clock

import "time"

// Clock abstracts the current time so session stamps and view tracking are testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Millis returns the clock's current time as unix milliseconds, the unit used
// for persisted timestamps.
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}

// FakeClock is a manually driven clock for tests.
type FakeClock struct {
	now time.Time
}

func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (f *FakeClock) Now() time.Time {
	return f.now
}

func (f *FakeClock) Set(t time.Time) {
	f.now = t.UTC()
}

func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
