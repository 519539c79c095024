package infrastructure

import "time"

// SystemClock implements the Clock port with the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
