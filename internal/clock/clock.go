package clock

import "time"

// Clock supplies the current time to everything that is date-dependent
// (payment deadlines, statute-of-limitations checks, action timestamps).
// Injecting it keeps deadline passage testable.
type Clock interface {
	Now() time.Time
	// Today returns the current date truncated to midnight UTC.
	Today() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixed is a clock pinned to a single instant. Tests move it with Advance.
type Fixed struct {
	current time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

func (f *Fixed) Now() time.Time { return f.current }

func (f *Fixed) Today() time.Time {
	y, m, d := f.current.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *Fixed) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}

// Set pins the clock to a new instant.
func (f *Fixed) Set(t time.Time) {
	f.current = t
}
