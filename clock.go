package main

import (
	"fmt"
	"time"
)

// Now returns the current wall-clock time.
// It is a package-level var so tests can pin the clock.
var Now = time.Now

// ClockError reports a system clock reading before the Unix epoch.
type ClockError struct {
	Unix int64
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("system clock is before the Unix epoch (%d)", e.Unix)
}

// UnixNow returns the current time as seconds since the Unix epoch.
func UnixNow() (uint64, error) {
	secs := Now().Unix()
	if secs < 0 {
		return 0, &ClockError{Unix: secs}
	}
	return uint64(secs), nil
}
