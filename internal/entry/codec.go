package entry

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
)

// Chunk encoding: uvarint headerLen | header | payload | crc32c(header|payload)
// Header: [1B kind][8B be unix-ms][url bytes]

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

var (
	ErrBadKind    = errors.New("entry: invalid kind")
	ErrBadPayload = errors.New("entry: payload is not valid JSON")
)

// Encode serializes an Entry into its storable chunk. The chunk length is the
// entry's admission size. A payload that cannot be represented fails closed.
func Encode(e Entry) ([]byte, error) {
	if !e.Kind.valid() {
		return nil, ErrBadKind
	}
	if len(e.Data) > 0 && !json.Valid(e.Data) {
		return nil, ErrBadPayload
	}

	header := make([]byte, 0, 9+len(e.URL))
	header = append(header, byte(e.Kind))
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(e.TsMs))
	header = append(header, ts[:]...)
	header = append(header, e.URL...)

	out := make([]byte, 0, 10+len(header)+len(e.Data)+4)
	var tmp [10]byte
	n := binary.PutUvarint(tmp[:], uint64(len(header)))
	out = append(out, tmp[:n]...)
	out = append(out, header...)
	out = append(out, e.Data...)

	crc := crc32.Update(0, castagnoli, header)
	crc = crc32.Update(crc, castagnoli, e.Data)
	var crcb [4]byte
	binary.BigEndian.PutUint32(crcb[:], crc)
	out = append(out, crcb[:]...)
	return out, nil
}

// Decode parses a chunk back into an Entry. Returns false for truncated or
// corrupt chunks.
func Decode(b []byte) (Entry, bool) {
	if len(b) < 1+9+4 {
		return Entry{}, false
	}
	hlen, n := binary.Uvarint(b)
	// hlen must fit in the chunk before it is safe to use as a slice index; a
	// crafted varint can otherwise overflow int and defeat the bounds check.
	if n <= 0 || hlen < 9 || hlen > uint64(len(b)) {
		return Entry{}, false
	}
	if n+int(hlen)+4 > len(b) {
		return Entry{}, false
	}
	header := b[n : n+int(hlen)]
	payload := b[n+int(hlen) : len(b)-4]

	expect := binary.BigEndian.Uint32(b[len(b)-4:])
	crc := crc32.Update(0, castagnoli, header)
	crc = crc32.Update(crc, castagnoli, payload)
	if crc != expect {
		return Entry{}, false
	}

	e := Entry{
		Kind: Kind(header[0]),
		TsMs: int64(binary.BigEndian.Uint64(header[1:9])),
		URL:  string(header[9:]),
	}
	if !e.Kind.valid() {
		return Entry{}, false
	}
	if len(payload) > 0 {
		e.Data = append(json.RawMessage(nil), payload...)
	}
	return e, true
}
