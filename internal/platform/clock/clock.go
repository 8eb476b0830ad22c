package clock

import "time"

// Clock abstracts time to keep stores and fixtures deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed struct{ At time.Time }

func (f Fixed) Now() time.Time { return f.At }
