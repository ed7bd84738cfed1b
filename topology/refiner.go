// File: topology/refiner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cache-aware refinement of provisional core-type groups. Detects cores
// in the least performant group that no L3 cache object covers and, when
// the group is mixed, splits them out into a new core type.

package topology

import (
	"fmt"

	"github.com/momentics/hioload-coretypes/api"
)

// l3Level is the cache level treated as last-level for classification.
const l3Level = 3

// RefineL3 turns provisional groups into final core-type descriptors.
//
// Only the least performant group is examined for L3 absence. Every L3
// object of the topology is subtracted from a working copy of the group's
// mask; whatever survives is exactly the subset no L3 cache covers:
//
//   - nothing survives: the group keeps HasL3Cache=true, unchanged;
//   - the whole mask survives: relabelled in place with HasL3Cache=false,
//     same id and rank;
//   - a mixed result: the covered part keeps the group's id and rank, the
//     uncovered remainder becomes a fresh descriptor with a rank strictly
//     below every existing one (numerically highest) and HasL3Cache=false.
//
// No logical processor is gained or lost: the produced masks are pairwise
// disjoint and their union equals the union of the input groups' masks.
func RefineL3(groups []Group, p api.TopologyProvider) ([]api.CoreType, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("refine: no provisional groups: %w", api.ErrTopologyUnavailable)
	}

	types := make([]api.CoreType, 0, len(groups)+1)
	for i, g := range groups {
		types = append(types, api.CoreType{
			ID:         i,
			Rank:       g.Rank,
			HasL3Cache: true,
			CPUs:       g.CPUs,
		})
	}

	caches, err := p.Caches(l3Level)
	if err != nil {
		return nil, fmt.Errorf("refine: enumerate L3 caches: %w", err)
	}

	last := len(types) - 1
	uncovered := types[last].CPUs.Clone()
	for _, c := range caches {
		if uncovered.IsEmpty() {
			break
		}
		uncovered = uncovered.Difference(c.CPUs)
	}

	switch {
	case uncovered.IsEmpty():
		// Every core of the least performant group sits under some L3.
	case uncovered.Equals(types[last].CPUs):
		types[last].HasL3Cache = false
	default:
		covered := types[last].CPUs.Difference(uncovered)
		types[last].CPUs = covered
		types = append(types, api.CoreType{
			ID:         len(types),
			Rank:       types[last].Rank + 1,
			HasL3Cache: false,
			CPUs:       uncovered,
		})
	}
	return types, nil
}
