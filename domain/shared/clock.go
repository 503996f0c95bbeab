package shared

import "time"

// Clock Time source injected into domain services so that event timestamps
// are deterministic under test. Production code uses UTCClock.
type Clock interface {
	Now() time.Time
}

// UTCClock System clock reporting UTC time
type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
