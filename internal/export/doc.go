// Package export turns an assembled harbor snapshot into the two delivery
// forms the collector supports: a local file (download) and a multipart POST
// to a remote collector (upload). The core only guarantees ordering and
// completeness; everything about the envelope lives here.
package export
