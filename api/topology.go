// File: api/topology.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral topology provider contract. Platform-specific
// implementations live in the topology package behind build tags.

package api

import "k8s.io/utils/cpuset"

// CoreObject describes one physical core as reported by a provider.
type CoreObject struct {
	// Efficiency is the hardware class of the core. Higher values mean
	// more performant cores. Cores sharing a class are coalesced into one
	// provisional group by the scanner.
	Efficiency int
	// CPUs is the set of logical processor indices backed by this core.
	CPUs cpuset.CPUSet
}

// CacheObject describes one cache node and the logical processors it serves.
type CacheObject struct {
	// Level is the cache level (3 for last-level cache on the platforms
	// this library classifies).
	Level int
	// CPUs is the set of logical processor indices the cache covers.
	CPUs cpuset.CPUSet
}

// TopologyProvider enumerates raw hardware objects for one host.
//
// Affinity masks are cpuset.CPUSet values, which carry the set primitives
// the classifier needs (clone, intersection, difference, equality,
// cardinality, emptiness). Providers hand out fresh sets; callers own what
// they receive.
type TopologyProvider interface {
	// Cores enumerates physical cores with their covered logical
	// processors. Returns ErrTopologyUnavailable when the host exposes
	// no usable processor information.
	Cores() ([]CoreObject, error)

	// Caches enumerates cache objects of the given level. An empty
	// result means the host reports no caches of that level; it is not
	// an error.
	Caches(level int) ([]CacheObject, error)
}
