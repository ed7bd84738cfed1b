// File: constraint/calculator.go
// Author: momentics <momentics@gmail.com>
//
// Default-concurrency calculation: the parallelism implied by a
// constraint against one immutable registry snapshot.

package constraint

import (
	"log"

	"github.com/momentics/hioload-coretypes/control"
	"github.com/momentics/hioload-coretypes/coretype"
)

// Calculator computes default concurrency. Reads are pure functions over
// the registry snapshot and a value-type constraint, safe for
// unsynchronized concurrent use.
type Calculator struct {
	Registry *coretype.Registry

	// Metrics, when set, counts stale-id hits under
	// control.MetricStaleCoreTypeIDs.
	Metrics *control.MetricsRegistry

	// Logf is the non-fatal diagnostic sink. Nil silences diagnostics.
	Logf func(format string, args ...any)
}

// NewCalculator returns a calculator over reg logging diagnostics to the
// standard logger.
func NewCalculator(reg *coretype.Registry) *Calculator {
	return &Calculator{Registry: reg, Logf: log.Printf}
}

// Concurrency sums the affinity-mask cardinality of every core type the
// constraint references. Any sums the whole registry, i.e. the total
// logical-processor count of the snapshot. An id absent from the
// registry (stale, e.g. the registry was rebuilt after the constraint
// was encoded) contributes zero and raises a diagnostic; the computation
// still succeeds and may return zero.
func (k *Calculator) Concurrency(c Constraint) int {
	ids, explicit := c.CoreTypes()
	if !explicit {
		return k.Registry.TotalCPUs()
	}
	sum := 0
	for _, id := range ids {
		t, err := k.Registry.Lookup(id)
		if err != nil {
			k.stale(id)
			continue
		}
		sum += t.CPUs.Size()
	}
	return sum
}

func (k *Calculator) stale(id int) {
	if k.Metrics != nil {
		k.Metrics.Inc(control.MetricStaleCoreTypeIDs)
	}
	if k.Logf != nil {
		k.Logf("coretypes: stale core type id %d contributes zero concurrency", id)
	}
}

// DefaultConcurrency is the convenience form of Calculator.Concurrency
// over a bare registry.
func DefaultConcurrency(c Constraint, reg *coretype.Registry) int {
	return NewCalculator(reg).Concurrency(c)
}
