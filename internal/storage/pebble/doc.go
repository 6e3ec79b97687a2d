// Package pebblestore is a thin wrapper around Pebble used by the on-disk
// harbor store: open/close, point ops, atomic batches, range deletes, and
// consistent snapshots, with a configurable WAL fsync policy.
//
//	db, err := pebblestore.Open(pebblestore.Options{DataDir: dir})
//	if err != nil { /* handle */ }
//	defer db.Close()
//
//	b := db.NewBatch()
//	_ = b.Set([]byte("k"), []byte("v"), nil)
//	_ = db.CommitBatch(context.Background(), b)
//	b.Close()
package pebblestore
