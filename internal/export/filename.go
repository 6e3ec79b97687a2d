package export

import (
	"strings"
	"time"
)

// Filename generates the download name for a snapshot:
// {project}-{title}-{yyyymmdd-hhmmss}-{sid}.json, with tags sanitized for
// the filesystem.
func Filename(project, title string, ts time.Time, sid string) string {
	parts := []string{
		sanitizeTag(project),
		sanitizeTag(title),
		ts.Format("20060102-150405"),
	}
	if sid != "" {
		parts = append(parts, sanitizeTag(sid))
	}
	return strings.Join(parts, "-") + ".json"
}

// sanitizeTag collapses anything outside [A-Za-z0-9._] into single dashes.
func sanitizeTag(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "untitled"
	}
	return out
}
