package harbor

import "sync"

// memStore keeps segments as append-only chunk slices. Chunks are never
// mutated or reordered after append, so a snapshot only needs to capture the
// slice headers under the lock; later appends may grow or reallocate the
// backing arrays without disturbing captured views.
type memStore struct {
	mu   sync.Mutex
	segs [][][]byte
}

// NewMemStore returns the default volatile store with one open segment.
func NewMemStore() Store {
	return &memStore{segs: [][][]byte{nil}}
}

func (m *memStore) Append(chunk []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	last := len(m.segs) - 1
	m.segs[last] = append(m.segs[last], chunk)
	return nil
}

func (m *memStore) Seal() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.segs = append(m.segs, nil)
	return nil
}

func (m *memStore) Snapshot() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	views := make([][][]byte, len(m.segs))
	for i, seg := range m.segs {
		views[i] = seg[:len(seg):len(seg)]
	}
	return &memSnapshot{segs: views}, nil
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.segs = [][][]byte{nil}
	return nil
}

func (m *memStore) Close() error { return nil }

type memSnapshot struct {
	segs [][][]byte
	seg  int
	idx  int
}

func (s *memSnapshot) Next() ([]byte, bool) {
	for s.seg < len(s.segs) {
		if s.idx < len(s.segs[s.seg]) {
			chunk := s.segs[s.seg][s.idx]
			s.idx++
			return chunk, true
		}
		s.seg++
		s.idx = 0
	}
	return nil, false
}

func (s *memSnapshot) Close() error { return nil }
