package harbor

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/cockroachdb/pebble"

	pebblestore "github.com/SamWeichangyue/page-spy/internal/storage/pebble"
)

// diskStore persists chunks in Pebble under a per-session prefix. The open
// segment index and next sequence live in a metadata key so a standalone
// collector can reopen its staging directory after a restart.
type diskStore struct {
	db  *pebblestore.DB
	sid string

	mu  sync.Mutex
	seg uint32
	seq uint64
}

// OpenDiskStore opens the on-disk store for the given session, restoring the
// open segment position from metadata if present.
func OpenDiskStore(db *pebblestore.DB, session string) (Store, error) {
	s := &diskStore{db: db, sid: session}
	meta, err := db.Get(keyMeta(session))
	if err != nil && !pebblestore.IsNotFound(err) {
		return nil, err
	}
	if len(meta) >= 12 {
		s.seg = binary.BigEndian.Uint32(meta[:4])
		s.seq = binary.BigEndian.Uint64(meta[4:12])
	}
	return s, nil
}

func (s *diskStore) metaValue() []byte {
	var v [12]byte
	binary.BigEndian.PutUint32(v[:4], s.seg)
	binary.BigEndian.PutUint64(v[4:12], s.seq)
	return v[:]
}

func (s *diskStore) Append(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.db.NewBatch()
	defer b.Close()
	if err := b.Set(keyEntry(s.sid, s.seg, s.seq), chunk, nil); err != nil {
		return err
	}
	s.seq++
	if err := b.Set(keyMeta(s.sid), s.metaValue(), nil); err != nil {
		s.seq--
		return err
	}
	if err := s.db.CommitBatch(context.Background(), b); err != nil {
		s.seq--
		return err
	}
	return nil
}

func (s *diskStore) Seal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seg++
	s.seq = 0
	if err := s.db.Set(keyMeta(s.sid), s.metaValue()); err != nil {
		return err
	}
	return nil
}

func (s *diskStore) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	psnap := s.db.NewSnapshot()
	s.mu.Unlock()
	low, hi := keyEntryBounds(s.sid)
	return &diskSnapshot{snap: psnap, low: low, hi: hi}, nil
}

func (s *diskStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	low, hi := keySessionBounds(s.sid)
	if err := s.db.DeleteRange(low, hi); err != nil {
		return err
	}
	s.seg = 0
	s.seq = 0
	return nil
}

func (s *diskStore) Close() error { return nil }

// diskSnapshot iterates the captured Pebble snapshot lazily, so decoding
// happens without holding any store lock.
type diskSnapshot struct {
	snap *pebble.Snapshot
	low  []byte
	hi   []byte
	iter *pebble.Iterator
	done bool
}

func (s *diskSnapshot) Next() ([]byte, bool) {
	if s.done {
		return nil, false
	}
	if s.iter == nil {
		iter, err := s.snap.NewIter(&pebble.IterOptions{LowerBound: s.low, UpperBound: s.hi})
		if err != nil {
			s.done = true
			return nil, false
		}
		s.iter = iter
		if !s.iter.First() {
			s.done = true
			return nil, false
		}
	} else if !s.iter.Next() {
		s.done = true
		return nil, false
	}
	return append([]byte(nil), s.iter.Value()...), true
}

func (s *diskSnapshot) Close() error {
	if s.iter != nil {
		_ = s.iter.Close()
		s.iter = nil
	}
	return s.snap.Close()
}
