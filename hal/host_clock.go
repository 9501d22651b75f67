package hal

import "time"

// hostClock reads monotonic nanoseconds relative to process start.
type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Now() int64 {
	return time.Since(c.start).Nanoseconds()
}
