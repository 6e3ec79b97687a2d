package harbor

// DefaultMaximum is the byte budget applied when none is configured.
const DefaultMaximum = 10 << 20

// Ledger tracks cumulative stored bytes for the open segment and decides
// admit/reject. Byte-accurate, no rounding. Not safe for concurrent use;
// the Harbor serializes access.
type Ledger struct {
	max  int64
	used int64
}

// NewLedger returns a ledger with the given budget. A non-positive maximum
// degrades to DefaultMaximum rather than failing.
func NewLedger(max int64) *Ledger {
	if max <= 0 {
		max = DefaultMaximum
	}
	return &Ledger{max: max}
}

// TryReserve commits size bytes if they fit and reports whether they did.
// A failed reservation has no side effect.
func (l *Ledger) TryReserve(size int64) bool {
	if size < 0 {
		return false
	}
	if l.used+size > l.max {
		return false
	}
	l.used += size
	return true
}

// Release returns size bytes to the budget. Used when a reserved append
// fails downstream.
func (l *Ledger) Release(size int64) {
	l.used -= size
	if l.used < 0 {
		l.used = 0
	}
}

// Reset zeroes the counter. Invoked when a segment closes.
func (l *Ledger) Reset() { l.used = 0 }

// Used returns the bytes committed to the open segment.
func (l *Ledger) Used() int64 { return l.used }

// Max returns the configured budget.
func (l *Ledger) Max() int64 { return l.max }
