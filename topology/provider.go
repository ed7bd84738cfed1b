// File: topology/provider.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral provider construction. Platform-specific
// implementations are located in separate files (provider_linux.go,
// provider_darwin.go, etc.) guarded by build tags.

package topology

import (
	"k8s.io/utils/cpuset"

	"github.com/momentics/hioload-coretypes/api"
)

// NewProvider returns the topology provider for the current platform.
// On unsupported platforms the provider reports ErrTopologyUnavailable
// from Cores, which makes the registry fall back to a single descriptor.
func NewProvider() api.TopologyProvider {
	return newPlatformProvider()
}

// FullSet returns the full logical-processor set of the host, for use by
// the degraded fallback path when no provider can enumerate topology.
// Never empty.
func FullSet() cpuset.CPUSet {
	return fullSetPlatform()
}

// span builds the contiguous processor set [start, start+n).
func span(start, n int) cpuset.CPUSet {
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, start+i)
	}
	return cpuset.New(ids...)
}
