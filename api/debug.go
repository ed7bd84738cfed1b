// Package api
// Author: momentics
//
// Live debug introspection support for production workloads.

package api

// Debug exposes runtime introspection over a topology snapshot: the
// facade implements it with probes for the registry view and the
// diagnostic counters.
type Debug interface {
	// DumpState emits a snapshot of system state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}
