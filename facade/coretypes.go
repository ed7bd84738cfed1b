// File: facade/coretypes.go
// Unified facade layer for hioload-coretypes.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the CoreTypes struct, which aggregates the topology
// registry, the constraint concurrency calculator, and the control-layer
// diagnostics behind a single facade. It exposes the discovery surface
// consumed by arena/scheduler layers: core-type ids, performance and
// efficiency filters, per-type info, and default-concurrency queries for
// arena initialization.

package facade

import (
	"fmt"
	"log"

	"github.com/momentics/hioload-coretypes/api"
	"github.com/momentics/hioload-coretypes/constraint"
	"github.com/momentics/hioload-coretypes/control"
	"github.com/momentics/hioload-coretypes/coretype"
	"github.com/momentics/hioload-coretypes/topology"
)

// Config holds parameters immutable per facade instance.
type Config struct {
	Provider      api.TopologyProvider // nil selects the platform provider
	EnableMetrics bool                 // whether to collect diagnostic counters
	EnableDebug   bool                 // whether to expose debug probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Provider:      nil, // auto-select platform provider
		EnableMetrics: true,
		EnableDebug:   true,
	}
}

// CoreTypeInfo is the discovery view of one core type.
type CoreTypeInfo struct {
	ID         int
	Name       string
	HasL3Cache bool
	// RelativePerformance is the performance rank; lower is more
	// performant.
	RelativePerformance int
}

// CoreTypes satisfies api.Debug through DumpState and RegisterProbe.
var _ api.Debug = (*CoreTypes)(nil)

// CoreTypes aggregates one topology snapshot's services.
type CoreTypes struct {
	registry *coretype.Registry
	calc     *constraint.Calculator
	metrics  *control.MetricsRegistry
	probes   *control.DebugProbes
}

// New scans the topology once and wires the registry, calculator and
// diagnostics. Never fails: an unavailable topology degrades to the
// single-type fallback registry.
func New(cfg *Config) *CoreTypes {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	provider := cfg.Provider
	if provider == nil {
		provider = topology.NewProvider()
	}

	ct := &CoreTypes{registry: coretype.Build(provider)}
	ct.calc = constraint.NewCalculator(ct.registry)

	if cfg.EnableMetrics {
		ct.metrics = control.NewMetricsRegistry()
		ct.calc.Metrics = ct.metrics
	}
	if ct.registry.Degraded() {
		if ct.metrics != nil {
			ct.metrics.Inc(control.MetricTopologyFallbacks)
		}
		log.Printf("coretypes: topology unavailable, using single-type fallback registry")
	}
	if cfg.EnableDebug {
		ct.probes = control.NewDebugProbes()
		ct.probes.RegisterProbe("coretypes.registry", func() any { return ct.AllInfo() })
		ct.probes.RegisterProbe("coretypes.metrics", func() any { return ct.Metrics() })
	}
	return ct
}

// Registry exposes the underlying immutable registry handle.
func (ct *CoreTypes) Registry() *coretype.Registry {
	return ct.registry
}

// IDs returns every known core-type id, most performant first.
func (ct *CoreTypes) IDs() []int {
	return ct.registry.IDs()
}

// PerformanceIDs returns the ids of the most performant tier.
func (ct *CoreTypes) PerformanceIDs() []int {
	return ct.idsByRank(true)
}

// EfficiencyIDs returns the ids of every tier below the most performant
// one. A single-type registry reports its one type from both queries.
func (ct *CoreTypes) EfficiencyIDs() []int {
	return ct.idsByRank(false)
}

func (ct *CoreTypes) idsByRank(best bool) []int {
	types := ct.registry.List()
	if len(types) == 1 {
		return []int{types[0].ID}
	}
	bestRank := types[0].Rank
	var ids []int
	for _, t := range types {
		if (t.Rank == bestRank) == best {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Info resolves the discovery view of one core-type id.
func (ct *CoreTypes) Info(id int) (CoreTypeInfo, error) {
	t, err := ct.registry.Lookup(id)
	if err != nil {
		return CoreTypeInfo{}, err
	}
	return ct.info(t), nil
}

// AllInfo returns the discovery view of every core type, most performant
// first.
func (ct *CoreTypes) AllInfo() []CoreTypeInfo {
	types := ct.registry.List()
	out := make([]CoreTypeInfo, 0, len(types))
	for _, t := range types {
		out = append(out, ct.info(t))
	}
	return out
}

func (ct *CoreTypes) info(t api.CoreType) CoreTypeInfo {
	return CoreTypeInfo{
		ID:                  t.ID,
		Name:                ct.typeName(t),
		HasL3Cache:          t.HasL3Cache,
		RelativePerformance: t.Rank,
	}
}

// typeName derives a stable human-readable label from the type's rank
// position and cache shape.
func (ct *CoreTypes) typeName(t api.CoreType) string {
	types := ct.registry.List()
	var name string
	switch {
	case len(types) == 1:
		name = "any"
	case t.Rank == types[0].Rank:
		name = "performance"
	case t.Rank > types[0].Rank+1 && t.HasL3Cache:
		name = fmt.Sprintf("efficiency-%d", t.Rank)
	default:
		name = "efficiency"
	}
	if !t.HasL3Cache {
		name += "-no-l3"
	}
	return name
}

// DefaultConcurrency computes the parallelism an arena should initialize
// with: the constraint's summed processor count minus reservedSlots,
// never below zero. Stale constraint ids contribute zero and raise a
// diagnostic through the control layer.
func (ct *CoreTypes) DefaultConcurrency(c constraint.Constraint, reservedSlots int) int {
	n := ct.calc.Concurrency(c) - reservedSlots
	if n < 0 {
		return 0
	}
	return n
}

// Metrics returns a snapshot of the diagnostic counters, or nil when
// metrics are disabled.
func (ct *CoreTypes) Metrics() map[string]any {
	if ct.metrics == nil {
		return nil
	}
	return ct.metrics.GetSnapshot()
}

// DumpState implements api.Debug over the registered probes.
func (ct *CoreTypes) DumpState() map[string]any {
	if ct.probes == nil {
		return map[string]any{}
	}
	return ct.probes.DumpState()
}

// RegisterProbe implements api.Debug; no-op when debug is disabled.
func (ct *CoreTypes) RegisterProbe(name string, fn func() any) {
	if ct.probes == nil {
		return
	}
	ct.probes.RegisterProbe(name, fn)
}
