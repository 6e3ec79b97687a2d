package harbor

import "encoding/binary"

// Keyspace for the Pebble-backed store (byte-wise, lexicographically
// sortable):
// - hb/{sid}/e/{seg_be4}{seq_be8}  (entry chunks)
// - hb/{sid}/m                     (store metadata: open segment, next seq)

var (
	hbPrefix   = []byte("hb/")
	entrySeg   = []byte("/e/")
	metaSuffix = []byte("/m")
)

func appendBE4(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// keyEntry builds the chunk key with big-endian segment and sequence for
// proper ordering.
func keyEntry(sid string, seg uint32, seq uint64) []byte {
	k := make([]byte, 0, len(sid)+20)
	k = append(k, hbPrefix...)
	k = append(k, sid...)
	k = append(k, entrySeg...)
	k = appendBE4(k, seg)
	k = appendBE8(k, seq)
	return k
}

// keyMeta builds the store metadata key.
func keyMeta(sid string) []byte {
	k := make([]byte, 0, len(sid)+8)
	k = append(k, hbPrefix...)
	k = append(k, sid...)
	k = append(k, metaSuffix...)
	return k
}

// keyEntryBounds returns the [low, high) range covering all chunks of sid.
func keyEntryBounds(sid string) (low, hi []byte) {
	low = make([]byte, 0, len(sid)+8)
	low = append(low, hbPrefix...)
	low = append(low, sid...)
	low = append(low, entrySeg...)
	hi = append(append([]byte(nil), low[:len(low)-1]...), low[len(low)-1]+1)
	return low, hi
}

// keySessionBounds returns the [low, high) range covering everything under sid.
func keySessionBounds(sid string) (low, hi []byte) {
	low = make([]byte, 0, len(sid)+4)
	low = append(low, hbPrefix...)
	low = append(low, sid...)
	low = append(low, '/')
	hi = append(append([]byte(nil), low[:len(low)-1]...), low[len(low)-1]+1)
	return low, hi
}
