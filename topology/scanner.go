// File: topology/scanner.go
// Author: momentics <momentics@gmail.com>
//
// Provisional core-type grouping. Coalesces the provider's per-core
// objects into one group per hardware efficiency class, most performant
// first.

package topology

import (
	"fmt"
	"sort"

	"k8s.io/utils/cpuset"

	"github.com/momentics/hioload-coretypes/api"
)

// Group is one provisional core-type group produced by Scan.
type Group struct {
	// Rank is the provisional performance rank: 0 for the most
	// performant class, increasing for less performant ones.
	Rank int
	// CPUs is the union of the logical processors of all cores in the
	// class. Owned by the caller; the scanner keeps no reference.
	CPUs cpuset.CPUSet
}

// Scan enumerates the provider's cores and groups them by efficiency
// class. The result is ordered most performant first and never empty on
// success. Scan has no side effects beyond reading the provider.
//
// Returns api.ErrTopologyUnavailable when the provider reports an error
// or no core covers any logical processor.
func Scan(p api.TopologyProvider) ([]Group, error) {
	cores, err := p.Cores()
	if err != nil {
		return nil, fmt.Errorf("scan cores: %w", api.ErrTopologyUnavailable)
	}

	byClass := make(map[int]cpuset.CPUSet)
	for _, c := range cores {
		if c.CPUs.IsEmpty() {
			continue
		}
		byClass[c.Efficiency] = byClass[c.Efficiency].Union(c.CPUs)
	}
	if len(byClass) == 0 {
		return nil, fmt.Errorf("scan cores: no logical processors: %w", api.ErrTopologyUnavailable)
	}

	classes := make([]int, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	// Higher efficiency class means more performant hardware; rank 0 is
	// the most performant group.
	sort.Sort(sort.Reverse(sort.IntSlice(classes)))

	groups := make([]Group, 0, len(classes))
	for rank, class := range classes {
		groups = append(groups, Group{Rank: rank, CPUs: byClass[class]})
	}
	return groups, nil
}
