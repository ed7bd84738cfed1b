// File: api/coretype.go
// Author: momentics <momentics@gmail.com>
//
// Core-type descriptor shared by the topology classifier, the registry
// and the constraint layer.

package api

import "k8s.io/utils/cpuset"

// CoreType describes one class of cores detected on the host.
type CoreType struct {
	// ID identifies the core type within one registry instance. IDs are
	// stable for the registry's lifetime only; they are not portable
	// across processes, machines or topology rebuilds and must not be
	// persisted.
	ID int

	// Rank orders core types by relative performance. Lower is more
	// performant. Ranks within a registry are strictly ordered, no ties.
	Rank int

	// HasL3Cache reports whether the cores of this type sit under a
	// last-level (L3) cache object.
	HasL3Cache bool

	// CPUs is the affinity mask of the type: the logical processors
	// belonging to its cores. Masks of distinct core types in one
	// registry are pairwise disjoint and together cover every logical
	// processor of the snapshot.
	CPUs cpuset.CPUSet
}
