package harbor

import "testing"

func TestLedgerReserveWithinBudget(t *testing.T) {
	l := NewLedger(100)
	if !l.TryReserve(40) || !l.TryReserve(40) {
		t.Fatalf("reservations within budget should succeed")
	}
	if l.Used() != 80 {
		t.Fatalf("used = %d, want 80", l.Used())
	}
}

func TestLedgerRejectLeavesStateUnchanged(t *testing.T) {
	l := NewLedger(100)
	if !l.TryReserve(80) {
		t.Fatalf("first reserve failed")
	}
	if l.TryReserve(40) {
		t.Fatalf("overflow reserve should fail")
	}
	if l.Used() != 80 {
		t.Fatalf("failed reserve must have no side effect: used=%d", l.Used())
	}
}

func TestLedgerExactFit(t *testing.T) {
	l := NewLedger(100)
	if !l.TryReserve(100) {
		t.Fatalf("exact fit should be admitted")
	}
	if l.TryReserve(1) {
		t.Fatalf("budget exhausted")
	}
}

func TestLedgerOversizeNeverAdmits(t *testing.T) {
	l := NewLedger(10)
	if l.TryReserve(11) {
		t.Fatalf("entry bigger than budget can never be admitted")
	}
}

func TestLedgerReset(t *testing.T) {
	l := NewLedger(50)
	l.TryReserve(50)
	l.Reset()
	if l.Used() != 0 {
		t.Fatalf("reset should zero the counter")
	}
	if !l.TryReserve(50) {
		t.Fatalf("full budget should be available after reset")
	}
}

func TestLedgerDefaultBudget(t *testing.T) {
	for _, max := range []int64{0, -1} {
		l := NewLedger(max)
		if l.Max() != DefaultMaximum {
			t.Fatalf("max=%d: want default budget, got %d", max, l.Max())
		}
	}
}

func TestLedgerRelease(t *testing.T) {
	l := NewLedger(100)
	l.TryReserve(60)
	l.Release(60)
	if l.Used() != 0 {
		t.Fatalf("release should return bytes: used=%d", l.Used())
	}
	l.Release(10)
	if l.Used() != 0 {
		t.Fatalf("used must not go negative")
	}
}
