package export

import (
	"encoding/json"

	"github.com/SamWeichangyue/page-spy/internal/entry"
)

// Record is one exported entry in the snapshot payload. Divider markers keep
// type "divider" so a downstream replay tool can reconstruct period
// boundaries.
type Record struct {
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	URL       string          `json:"url,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Marshal renders entries into the snapshot wire form, preserving append
// order.
func Marshal(entries []entry.Entry) ([]byte, error) {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, Record{
			Type:      e.Kind.String(),
			Timestamp: e.TsMs,
			URL:       e.URL,
			Data:      e.Data,
		})
	}
	return json.Marshal(records)
}
