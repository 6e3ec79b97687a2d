// Package id generates compact, lexicographically sortable identifiers for
// collector sessions and snapshots: 8 bytes of unix-ms timestamp followed by
// 4 bytes of per-process sequence, rendered as hex.
package id
