package harbor

import (
	"bytes"
	"fmt"
	"testing"
)

func collect(t *testing.T, snap Snapshot) [][]byte {
	t.Helper()
	defer snap.Close()
	var out [][]byte
	for {
		chunk, ok := snap.Next()
		if !ok {
			return out
		}
		out = append(out, chunk)
	}
}

func TestMemStoreAppendOrder(t *testing.T) {
	m := NewMemStore()
	for i := 0; i < 4; i++ {
		if err := m.Append([]byte{byte(i)}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	chunks := collect(t, snap)
	if len(chunks) != 4 {
		t.Fatalf("want 4 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c[0] != byte(i) {
			t.Fatalf("chunk %d out of order", i)
		}
	}
}

func TestMemStoreSnapshotIgnoresLaterAppends(t *testing.T) {
	m := NewMemStore()
	_ = m.Append([]byte("a"))
	_ = m.Append([]byte("b"))
	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	_ = m.Append([]byte("c"))
	_ = m.Seal()
	_ = m.Append([]byte("d"))

	chunks := collect(t, snap)
	if len(chunks) != 2 {
		t.Fatalf("snapshot must only see chunks present at call time: %d", len(chunks))
	}
	if !bytes.Equal(chunks[0], []byte("a")) || !bytes.Equal(chunks[1], []byte("b")) {
		t.Fatalf("unexpected chunks: %q %q", chunks[0], chunks[1])
	}
}

func TestMemStoreSealPreservesOrderAcrossSegments(t *testing.T) {
	m := NewMemStore()
	for i := 0; i < 5; i++ {
		_ = m.Append([]byte(fmt.Sprintf("c%d", i)))
		if i == 2 {
			_ = m.Seal()
		}
	}
	snap, _ := m.Snapshot()
	chunks := collect(t, snap)
	if len(chunks) != 5 {
		t.Fatalf("want 5 chunks across segments, got %d", len(chunks))
	}
	for i, c := range chunks {
		if string(c) != fmt.Sprintf("c%d", i) {
			t.Fatalf("chunk %d = %q", i, c)
		}
	}
}

func TestMemStoreClear(t *testing.T) {
	m := NewMemStore()
	_ = m.Append([]byte("x"))
	_ = m.Seal()
	_ = m.Append([]byte("y"))
	if err := m.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	snap, _ := m.Snapshot()
	if chunks := collect(t, snap); len(chunks) != 0 {
		t.Fatalf("store should be empty after clear: %d", len(chunks))
	}
	if err := m.Append([]byte("z")); err != nil {
		t.Fatalf("append after clear: %v", err)
	}
}
