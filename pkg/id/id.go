package id

import (
	"encoding/binary"
	"sync"
	"time"
)

// ID is a 96-bit sortable identifier: [8B ms timestamp][4B sequence].
type ID [12]byte

// String returns the hex form, suitable for filenames and key prefixes.
func (i ID) String() string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(i)*2)
	for n, v := range i {
		out[n*2] = hexdigits[v>>4]
		out[n*2+1] = hexdigits[v&0x0f]
	}
	return string(out)
}

// Generator produces monotonically increasing IDs per process.
type Generator struct {
	mu     sync.Mutex
	lastMs int64
	seq    uint32
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator { return &Generator{} }

// nowMs is swappable in tests.
var nowMs = func() int64 { return time.Now().UnixMilli() }

// Next returns a new ID. A clock that goes backwards reuses the last observed
// millisecond and keeps incrementing the sequence.
func (g *Generator) Next() ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := nowMs()
	if ms < g.lastMs {
		ms = g.lastMs
	}
	if ms == g.lastMs {
		g.seq++
	} else {
		g.seq = 0
		g.lastMs = ms
	}

	var id ID
	binary.BigEndian.PutUint64(id[0:8], uint64(ms))
	binary.BigEndian.PutUint32(id[8:12], g.seq)
	return id
}
