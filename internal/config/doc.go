// Package config defines the collector's declarative configuration: harbor
// budget and period, staging directory, upload endpoint metadata, the cared
// message filter, and logging. Values come from built-in defaults, an
// optional JSON or YAML file, and a HARBOR_* environment overlay, in that
// order.
package config
