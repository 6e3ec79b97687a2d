// Package harbor implements the collector's bounded staging buffer.
//
// # Overview
//
// A Harbor accumulates encoded entries into an ordered sequence of segments.
// The open segment is append-only and byte-budgeted; sealing it (a "divide")
// freezes it, opens a fresh one, and resets the capacity ledger and the
// network dedup index ("stock"). Snapshots read every segment in append
// order and are consistent with respect to concurrent appends: they observe
// exactly the chunks present when the snapshot was taken.
//
// API surface (internal)
//
//	h := harbor.New(harbor.Options{Maximum: 10 << 20, Period: time.Minute})
//	ok := h.Add(entry.Entry{Kind: entry.KindConsole, TsMs: now, Data: payload})
//	all, _ := h.GetAll() // ordered, dividers included
//	h.Clear()            // back to freshly-constructed state
//	defer h.Close()
//
// Admission can fail three ways, all reported as a plain false: the entry's
// network URL is already in the stock, the encoded chunk would exceed the
// open segment's byte budget, or the payload cannot be encoded. The harbor
// keeps operating after any rejection; resubmission is the producer's call.
//
// Physical storage is pluggable via Store: an in-memory store (default,
// volatile page-session buffering) or a Pebble-backed store for the
// standalone collector's on-disk staging directory.
package harbor
