package harbor

import (
	"github.com/SamWeichangyue/page-spy/internal/entry"
)

// assemble decodes every chunk the snapshot observes, in append order across
// segments, divider markers included. Chunks that fail to decode are skipped;
// a corrupt chunk must not take the export down with it.
func assemble(snap Snapshot) []entry.Entry {
	var out []entry.Entry
	for {
		chunk, ok := snap.Next()
		if !ok {
			break
		}
		if e, ok := entry.Decode(chunk); ok {
			out = append(out, e)
		}
	}
	return out
}
