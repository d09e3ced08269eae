package ledger

import "time"

// Clock supplies the current time for every deadline check. Operations never
// read the wall clock directly, which keeps settlement deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
