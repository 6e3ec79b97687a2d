package harbor

// Store is the physical home of encoded entry chunks. Implementations must
// make Snapshot atomic with respect to Append and Seal.
type Store interface {
	// Append adds a chunk to the open segment.
	Append(chunk []byte) error
	// Seal freezes the open segment and opens a new empty one.
	Seal() error
	// Snapshot captures a point-in-time structural view: exactly the chunks
	// present at call time, in append order across segments. Chunks appended
	// afterward are not observed.
	Snapshot() (Snapshot, error)
	// Clear discards every segment and opens a fresh empty one.
	Clear() error
	// Close releases store resources.
	Close() error
}

// Snapshot iterates chunks in append order, divider markers included.
// Safe to consume while producers keep appending to the store.
type Snapshot interface {
	Next() ([]byte, bool)
	Close() error
}
