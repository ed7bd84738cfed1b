// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-coretypes.
//
// Provides concurrent-safe diagnostics primitives:
//   - Counter telemetry for non-fatal conditions (stale core-type ids,
//     topology fallback activations)
//   - State export, debug hooks, and probe registration
package control
