// Package plugin wires a harbor to the host's instrumentation bus.
//
// The plugin subscribes to categorized messages, keeps only the cared ones
// (an optional CEL expression over category/url/size/ts_ms), and forwards
// them to the harbor. It can be paused and resumed at any time, and
// initialization is idempotent: a second Init on the same instance is a
// no-op, checked on explicit instance state rather than a package-level
// flag.
package plugin
