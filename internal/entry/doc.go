// Package entry defines the captured event model and its storable binary
// form.
//
// An Entry is one event observed by an instrumentation source: console
// output, a network request, a storage mutation, a system info report, or a
// session-replay frame. A reserved divider kind marks period boundaries in
// the harbor.
//
// Chunks are stored as: uvarint headerLen | header | payload | crc32c(header|payload).
// The header is 1 byte kind, 8 bytes big-endian unix-ms timestamp, then the
// request URL for network entries. The payload is the entry's JSON data.
package entry
