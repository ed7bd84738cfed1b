// Package constraint
// Author: momentics <momentics@gmail.com>
//
// Compact core-type constraint encoding and the default-concurrency
// calculator that consumes it.
//
// A Constraint is a plain 64-bit value: an 8-bit marker block selects the
// legacy single-id or the set-valued bitmap encoding, and the all-ones
// value is the reserved Any sentinel meaning "unconstrained". Values are
// copyable data with no shared state; every operation here is a pure
// function over a value and safe for concurrent use without locking.
package constraint
