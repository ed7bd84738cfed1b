//go:build !linux
// +build !linux

// File: topology/fullset_stub.go
// Author: momentics <momentics@gmail.com>
//
// Portable full-processor-set fallback for platforms without an affinity
// mask syscall binding.

package topology

import (
	"runtime"

	"k8s.io/utils/cpuset"
)

func fullSetPlatform() cpuset.CPUSet {
	return span(0, runtime.NumCPU())
}
