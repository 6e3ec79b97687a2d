package harbor

import "time"

// ShouldDivide reports whether a period boundary is due: period is positive
// and at least one period has elapsed since the last division (or since
// harbor creation). A non-positive period disables automatic division.
func ShouldDivide(elapsed, period time.Duration) bool {
	return period > 0 && elapsed >= period
}
