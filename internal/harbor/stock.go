package harbor

import "sort"

// Stock is the set of network request identifiers admitted since the last
// divider (or since harbor creation). Producers consult it to avoid even
// constructing a duplicate entry. Not safe for concurrent use; the Harbor
// serializes access.
type Stock struct {
	keys map[string]struct{}
}

// NewStock returns an empty index.
func NewStock() *Stock { return &Stock{keys: map[string]struct{}{}} }

// Has reports whether key was already admitted in the open segment.
func (s *Stock) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Record marks key as admitted. Recording the same key twice is a no-op.
func (s *Stock) Record(key string) { s.keys[key] = struct{}{} }

// Reset empties the index. Invoked together with segment close or clear.
func (s *Stock) Reset() { s.keys = map[string]struct{}{} }

// Len returns the number of recorded keys.
func (s *Stock) Len() int { return len(s.keys) }

// Keys returns a sorted copy of the current key set.
func (s *Stock) Keys() []string {
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
