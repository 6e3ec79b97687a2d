package harbor

import (
	"sync"
	"time"

	"github.com/SamWeichangyue/page-spy/internal/entry"
	logpkg "github.com/SamWeichangyue/page-spy/pkg/log"
)

// Options configures a Harbor.
type Options struct {
	// Maximum is the byte budget of the open segment. Non-positive values
	// degrade to DefaultMaximum.
	Maximum int64
	// Period enables automatic division when positive; otherwise the harbor
	// is one continuously growing bounded buffer.
	Period time.Duration
	// Store overrides the default in-memory store.
	Store Store
	// OnDivide is invoked after each division, outside the harbor lock, so
	// producers that keep incremental state know to re-emit a full baseline.
	OnDivide func()
	// Logger receives rejection diagnostics at debug level.
	Logger logpkg.Logger
}

// Harbor is the façade over ledger, stock, store, and divider. All mutations
// go through one mutex; snapshots capture structure under the mutex and
// decode outside it, so GetAll never blocks producers.
type Harbor struct {
	mu         sync.Mutex
	store      Store
	ledger     *Ledger
	stock      *Stock
	period     time.Duration
	timer      *time.Timer
	lastDivide time.Time
	onDivide   func()
	logger     logpkg.Logger
	closed     bool
}

// New constructs a Harbor. Construction is total: garbage options degrade
// (see Options) rather than fail.
func New(opts Options) *Harbor {
	st := opts.Store
	if st == nil {
		st = NewMemStore()
	}
	lg := opts.Logger
	if lg == nil {
		lg = logpkg.NewNop()
	}
	period := opts.Period
	if period < 0 {
		period = 0
	}
	h := &Harbor{
		store:      st,
		ledger:     NewLedger(opts.Maximum),
		stock:      NewStock(),
		period:     period,
		lastDivide: time.Now(),
		onDivide:   opts.OnDivide,
		logger:     lg.With(logpkg.Component("harbor")),
	}
	h.mu.Lock()
	h.rescheduleLocked()
	h.mu.Unlock()
	return h
}

// Add admits one entry. Network entries are checked against the stock first
// (duplicate key in the open segment rejects with no side effect), then the
// ledger (capacity overflow rejects with no side effect). Divider entries
// bypass both and unconditionally close the current segment. Malformed
// payloads fail closed. Rejection is final for that entry; resubmission is
// the producer's decision.
func (h *Harbor) Add(e entry.Entry) bool {
	if e.Kind == entry.KindDivider {
		return h.Divide()
	}
	chunk, err := entry.Encode(e)
	if err != nil {
		h.logger.Debug("entry rejected", logpkg.Str("reason", "malformed"), logpkg.Err(err))
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	dedup := e.Kind == entry.KindNetwork && e.URL != ""
	if dedup && h.stock.Has(e.URL) {
		return false
	}
	size := int64(len(chunk))
	if !h.ledger.TryReserve(size) {
		h.logger.Debug("entry rejected",
			logpkg.Str("reason", "capacity"),
			logpkg.Int64("size", size),
			logpkg.Int64("used", h.ledger.Used()),
			logpkg.Int64("max", h.ledger.Max()))
		return false
	}
	if err := h.store.Append(chunk); err != nil {
		h.ledger.Release(size)
		h.logger.Warn("append failed", logpkg.Err(err))
		return false
	}
	if dedup {
		h.stock.Record(e.URL)
	}
	return true
}

// Divide appends a divider marker, seals the open segment, and resets the
// ledger and the stock. The boundary listener runs after the lock is
// released. Reports false on a closed harbor.
func (h *Harbor) Divide() bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.divideLocked()
	cb := h.onDivide
	h.mu.Unlock()
	if cb != nil {
		cb()
	}
	return true
}

func (h *Harbor) divideLocked() {
	chunk, err := entry.Encode(entry.Divider(time.Now()))
	if err == nil {
		if aerr := h.store.Append(chunk); aerr != nil {
			h.logger.Warn("divider append failed", logpkg.Err(aerr))
		}
	}
	if err := h.store.Seal(); err != nil {
		h.logger.Warn("segment seal failed", logpkg.Err(err))
	}
	h.ledger.Reset()
	h.stock.Reset()
	h.lastDivide = time.Now()
	h.rescheduleLocked()
}

// timerFire is the period timer callback. It linearizes with Add through the
// harbor mutex like any other mutation.
func (h *Harbor) timerFire() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	if !ShouldDivide(time.Since(h.lastDivide), h.period) {
		// A manual divide or clear raced this fire; its reschedule owns the
		// next boundary.
		h.mu.Unlock()
		return
	}
	h.divideLocked()
	cb := h.onDivide
	h.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// rescheduleLocked replaces the pending period timer. At most one timer is
// active at a time.
func (h *Harbor) rescheduleLocked() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	if h.period <= 0 || h.closed {
		return
	}
	h.timer = time.AfterFunc(h.period, h.timerFire)
}

// Reharbor reconfigures the division period, cancelling and replacing any
// pending timer. A non-positive period disables automatic division.
func (h *Harbor) Reharbor(period time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	if period < 0 {
		period = 0
	}
	h.period = period
	h.rescheduleLocked()
}

// GetAll materializes a consistent snapshot of every entry across all
// segments, in append order, divider markers included. Entries appended
// after the snapshot point are not observed. Returns an empty sequence if
// the harbor never received an entry.
func (h *Harbor) GetAll() ([]entry.Entry, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, nil
	}
	snap, err := h.store.Snapshot()
	h.mu.Unlock()
	if err != nil {
		return nil, err
	}
	defer snap.Close()
	return assemble(snap), nil
}

// Clear discards all segments and resets the ledger, the stock, and the
// period timer. From the caller's point of view the harbor is freshly
// constructed; no partial clear is observable. Idempotent.
func (h *Harbor) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	if err := h.store.Clear(); err != nil {
		h.logger.Warn("clear failed", logpkg.Err(err))
	}
	h.ledger.Reset()
	h.stock.Reset()
	h.lastDivide = time.Now()
	h.rescheduleLocked()
}

// Stock returns a sorted copy of the network identifiers admitted since the
// last divider.
func (h *Harbor) Stock() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stock.Keys()
}

// Used returns the bytes committed to the open segment.
func (h *Harbor) Used() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ledger.Used()
}

// Maximum returns the effective byte budget of the open segment.
func (h *Harbor) Maximum() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ledger.Max()
}

// Close stops the period timer and releases the store. Subsequent operations
// are no-ops.
func (h *Harbor) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	if err := h.store.Close(); err != nil {
		h.logger.Warn("store close failed", logpkg.Err(err))
	}
}
