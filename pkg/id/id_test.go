package id

import (
	"sort"
	"testing"
)

func TestNextMonotonic(t *testing.T) {
	g := NewGenerator()
	prev := g.Next()
	for i := 0; i < 1000; i++ {
		cur := g.Next()
		if cur.String() <= prev.String() {
			t.Fatalf("ids not increasing: %s then %s", prev, cur)
		}
		prev = cur
	}
}

func TestBackwardsClock(t *testing.T) {
	g := NewGenerator()
	times := []int64{100, 100, 50, 50}
	i := 0
	orig := nowMs
	nowMs = func() int64 { ms := times[i%len(times)]; i++; return ms }
	defer func() { nowMs = orig }()

	var ids []string
	for range times {
		ids = append(ids, g.Next().String())
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("expected sorted ids despite clock regression: %v", ids)
	}
}

func TestStringLength(t *testing.T) {
	if got := NewGenerator().Next().String(); len(got) != 24 {
		t.Fatalf("want 24 hex chars, got %d (%s)", len(got), got)
	}
}
