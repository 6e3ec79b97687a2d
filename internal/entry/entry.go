package entry

import (
	"encoding/json"
	"time"
)

// Kind identifies the instrumentation source of an Entry.
type Kind byte

const (
	KindConsole Kind = iota + 1
	KindNetwork
	KindStorage
	KindSystem
	KindReplay
	// KindDivider is reserved for period boundary markers inserted by the
	// harbor itself; producers never emit it.
	KindDivider
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindConsole:
		return "console"
	case KindNetwork:
		return "network"
	case KindStorage:
		return "storage"
	case KindSystem:
		return "system"
	case KindReplay:
		return "rrweb"
	case KindDivider:
		return "divider"
	default:
		return "unknown"
	}
}

// KindFromCategory maps a bus message category to a Kind. Returns false for
// categories the harbor does not store.
func KindFromCategory(category string) (Kind, bool) {
	switch category {
	case "console":
		return KindConsole, true
	case "network":
		return KindNetwork, true
	case "storage":
		return KindStorage, true
	case "system":
		return KindSystem, true
	case "rrweb", "session-replay":
		return KindReplay, true
	default:
		return 0, false
	}
}

func (k Kind) valid() bool { return k >= KindConsole && k <= KindDivider }

// Entry is one captured event. Immutable once admitted to a harbor.
type Entry struct {
	Kind Kind
	// TsMs is the capture timestamp in unix milliseconds.
	TsMs int64
	// URL is set for network entries only and doubles as the dedup key.
	URL string
	// Data is the opaque JSON payload. Empty for dividers.
	Data json.RawMessage
}

// Divider returns a boundary marker entry with a zero-size payload.
func Divider(ts time.Time) Entry {
	return Entry{Kind: KindDivider, TsMs: ts.UnixMilli()}
}
