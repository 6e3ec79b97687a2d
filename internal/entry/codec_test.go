package entry

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

func TestEncodeDecodeNetwork(t *testing.T) {
	e := Entry{Kind: KindNetwork, TsMs: 1700000000123, URL: "https://api.example.com/user", Data: []byte(`{"status":200}`)}
	chunk, err := Encode(e)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, ok := Decode(chunk)
	if !ok {
		t.Fatalf("decode failed")
	}
	if got.Kind != e.Kind || got.TsMs != e.TsMs || got.URL != e.URL {
		t.Fatalf("header mismatch: %+v", got)
	}
	if !bytes.Equal(got.Data, e.Data) {
		t.Fatalf("payload mismatch: %s", got.Data)
	}
}

func TestEncodeDividerZeroPayload(t *testing.T) {
	chunk, err := Encode(Divider(time.UnixMilli(42)))
	if err != nil {
		t.Fatalf("encode divider: %v", err)
	}
	got, ok := Decode(chunk)
	if !ok {
		t.Fatalf("decode divider failed")
	}
	if got.Kind != KindDivider || got.TsMs != 42 || len(got.Data) != 0 {
		t.Fatalf("unexpected divider: %+v", got)
	}
}

func TestEncodeRejectsMalformedPayload(t *testing.T) {
	_, err := Encode(Entry{Kind: KindConsole, Data: []byte(`{"open":`)})
	if err == nil {
		t.Fatalf("expected error for invalid JSON payload")
	}
}

func TestEncodeRejectsBadKind(t *testing.T) {
	if _, err := Encode(Entry{Kind: 0}); err == nil {
		t.Fatalf("expected error for zero kind")
	}
	if _, err := Encode(Entry{Kind: 200}); err == nil {
		t.Fatalf("expected error for out-of-range kind")
	}
}

func TestDecodeRejectsCorruptChunk(t *testing.T) {
	chunk, err := Encode(Entry{Kind: KindConsole, TsMs: 1, Data: []byte(`{"m":"hi"}`)})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	chunk[len(chunk)/2] ^= 0xff
	if _, ok := Decode(chunk); ok {
		t.Fatalf("expected checksum rejection")
	}
}

func TestDecodeRejectsTruncated(t *testing.T) {
	if _, ok := Decode([]byte{0x01, 0x02}); ok {
		t.Fatalf("expected truncation rejection")
	}
	if _, ok := Decode(nil); ok {
		t.Fatalf("expected nil rejection")
	}

	// A header length claiming more bytes than the chunk holds must be
	// rejected, including values that would overflow int.
	var huge [10]byte
	n := binary.PutUvarint(huge[:], 1<<63)
	chunk := append(huge[:n], make([]byte, 10)...)
	if _, ok := Decode(chunk); ok {
		t.Fatalf("expected oversized header length rejection")
	}
	n = binary.PutUvarint(huge[:], 1000)
	chunk = append(huge[:n], make([]byte, 20)...)
	if _, ok := Decode(chunk); ok {
		t.Fatalf("expected header length beyond chunk rejection")
	}
}

func TestKindFromCategory(t *testing.T) {
	cases := []struct {
		cat  string
		want Kind
		ok   bool
	}{
		{"console", KindConsole, true},
		{"network", KindNetwork, true},
		{"storage", KindStorage, true},
		{"system", KindSystem, true},
		{"rrweb", KindReplay, true},
		{"session-replay", KindReplay, true},
		{"divider", 0, false},
		{"other", 0, false},
	}
	for _, c := range cases {
		k, ok := KindFromCategory(c.cat)
		if ok != c.ok || k != c.want {
			t.Fatalf("%s: got (%v,%v) want (%v,%v)", c.cat, k, ok, c.want, c.ok)
		}
	}
}
