package clock

import "time"

type Clock interface {
	Now() time.Time
}

type clock struct{}

func (c *clock) Now() time.Time {
	return time.Now()
}

func New() Clock {
	return &clock{}
}

// Mock is a fixed clock for tests that assert on dates, like the
// submission due-date arithmetic.
type Mock struct {
	now time.Time
}

func NewMock(now time.Time) *Mock {
	return &Mock{
		now: now,
	}
}

func (m *Mock) Now() time.Time {
	return m.now
}
