// Package collector is the composition root: it wires configuration,
// physical storage, the harbor, the bus plugin, and the export helpers for a
// single collector instance.
package collector
