package pebblestore

import (
	"context"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{DataDir: t.TempDir(), Fsync: FsyncModeAlways})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetGetDelete(t *testing.T) {
	db := openTestDB(t)
	if err := db.Set([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := db.Get([]byte("k"))
	if err != nil || string(got) != "v" {
		t.Fatalf("get: %q %v", got, err)
	}
	if err := db.Delete([]byte("k")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.Get([]byte("k")); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBatchCommitAtomic(t *testing.T) {
	db := openTestDB(t)
	b := db.NewBatch()
	_ = b.Set([]byte("a"), []byte("1"), nil)
	_ = b.Set([]byte("b"), []byte("2"), nil)
	if err := db.CommitBatch(context.Background(), b); err != nil {
		t.Fatalf("commit: %v", err)
	}
	b.Close()
	for _, k := range []string{"a", "b"} {
		if _, err := db.Get([]byte(k)); err != nil {
			t.Fatalf("get %s: %v", k, err)
		}
	}
}

func TestDeleteRange(t *testing.T) {
	db := openTestDB(t)
	for _, k := range []string{"p/1", "p/2", "q/1"} {
		if err := db.Set([]byte(k), []byte("x")); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	if err := db.DeleteRange([]byte("p/"), []byte("p0")); err != nil {
		t.Fatalf("delete range: %v", err)
	}
	if _, err := db.Get([]byte("p/1")); !IsNotFound(err) {
		t.Fatalf("p/1 should be gone")
	}
	if _, err := db.Get([]byte("q/1")); err != nil {
		t.Fatalf("q/1 should remain: %v", err)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	db := openTestDB(t)
	if err := db.Set([]byte("k"), []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	snap := db.NewSnapshot()
	defer snap.Close()
	if err := db.Set([]byte("k"), []byte("v2")); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, closer, err := snap.Get([]byte("k"))
	if err != nil {
		t.Fatalf("snap get: %v", err)
	}
	defer closer.Close()
	if string(val) != "v1" {
		t.Fatalf("snapshot should see v1, got %q", val)
	}
}
