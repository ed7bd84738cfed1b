// File: coretype/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Immutable core-type registry. Built once per topology snapshot from a
// scan + refine pass; read-only thereafter, safe for unsynchronized
// concurrent readers.

package coretype

import (
	"sort"

	"k8s.io/utils/cpuset"

	"github.com/momentics/hioload-coretypes/api"
	"github.com/momentics/hioload-coretypes/topology"
)

// Registry holds the final ordered core-type descriptors of one topology
// snapshot. Ids are stable for this instance only; never persist them.
type Registry struct {
	types    []api.CoreType // rank ascending
	total    cpuset.CPUSet
	degraded bool
}

// Build scans and refines the provider's topology into a registry.
// Provider failures never surface: the result degrades to a single
// descriptor covering the full processor set, so callers always get a
// usable registry.
func Build(p api.TopologyProvider) *Registry {
	r, err := build(p)
	if err != nil {
		return fallback()
	}
	return r
}

func build(p api.TopologyProvider) (*Registry, error) {
	groups, err := topology.Scan(p)
	if err != nil {
		return nil, err
	}
	types, err := topology.RefineL3(groups, p)
	if err != nil {
		return nil, err
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Rank < types[j].Rank })

	total := cpuset.New()
	for _, t := range types {
		total = total.Union(t.CPUs)
	}
	return &Registry{types: types, total: total}, nil
}

// fallback builds the degraded single-type registry: any core type, full
// processor count.
func fallback() *Registry {
	full := topology.FullSet()
	return &Registry{
		types:    []api.CoreType{{ID: 0, Rank: 0, HasL3Cache: true, CPUs: full}},
		total:    full,
		degraded: true,
	}
}

// List returns the descriptors ordered by performance rank ascending
// (most performant first). The returned slice is the caller's to keep.
func (r *Registry) List() []api.CoreType {
	out := make([]api.CoreType, len(r.types))
	copy(out, r.types)
	return out
}

// IDs returns every known core-type id, rank order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.types))
	for _, t := range r.types {
		ids = append(ids, t.ID)
	}
	return ids
}

// Lookup resolves a core-type id.
func (r *Registry) Lookup(id int) (api.CoreType, error) {
	for _, t := range r.types {
		if t.ID == id {
			return t, nil
		}
	}
	return api.CoreType{}, api.NewError(api.ErrCodeUnknownCoreType, "unknown core type").WithContext("id", id)
}

// ByL3Presence returns the descriptors filtered by L3 presence, rank
// order.
func (r *Registry) ByL3Presence(hasL3 bool) []api.CoreType {
	var out []api.CoreType
	for _, t := range r.types {
		if t.HasL3Cache == hasL3 {
			out = append(out, t)
		}
	}
	return out
}

// TotalCPUs is the logical processor count of the snapshot.
func (r *Registry) TotalCPUs() int {
	return r.total.Size()
}

// Degraded reports whether this registry is the topology-unavailable
// fallback.
func (r *Registry) Degraded() bool {
	return r.degraded
}
