//go:build darwin
// +build darwin

// File: topology/provider_darwin.go
// Author: momentics <momentics@gmail.com>
//
// Darwin sysctl topology provider. Hybrid clusters are reported through
// the hw.perflevelN namespace on Apple silicon; perflevel 0 is the most
// performant cluster, while XNU numbers logical CPUs efficiency-first.

package topology

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-coretypes/api"
)

type sysctlProvider struct{}

func newPlatformProvider() api.TopologyProvider {
	return &sysctlProvider{}
}

// Cores reports one core object per performance level.
func (p *sysctlProvider) Cores() ([]api.CoreObject, error) {
	nlevels, err := unix.SysctlUint32("hw.nperflevels")
	if err != nil || nlevels == 0 {
		n, err := unix.SysctlUint32("hw.logicalcpu")
		if err != nil || n == 0 {
			return nil, fmt.Errorf("sysctl hw.logicalcpu: %w", api.ErrTopologyUnavailable)
		}
		return []api.CoreObject{{Efficiency: 0, CPUs: span(0, int(n))}}, nil
	}

	var cores []api.CoreObject
	next := 0
	for level := int(nlevels) - 1; level >= 0; level-- {
		n, err := unix.SysctlUint32(fmt.Sprintf("hw.perflevel%d.logicalcpu", level))
		if err != nil || n == 0 {
			continue
		}
		cores = append(cores, api.CoreObject{
			Efficiency: int(nlevels) - 1 - level,
			CPUs:       span(next, int(n)),
		})
		next += int(n)
	}
	if len(cores) == 0 {
		return nil, fmt.Errorf("sysctl hw.perflevel: %w", api.ErrTopologyUnavailable)
	}
	return cores, nil
}

// Caches reports a single level-3 object covering every logical CPU on
// hosts that expose hw.l3cachesize (Intel Macs). Apple silicon has no L3
// and yields an empty result.
func (p *sysctlProvider) Caches(level int) ([]api.CacheObject, error) {
	if level != l3Level {
		return nil, nil
	}
	size, err := unix.SysctlUint64("hw.l3cachesize")
	if err != nil || size == 0 {
		return nil, nil
	}
	n, err := unix.SysctlUint32("hw.logicalcpu")
	if err != nil || n == 0 {
		return nil, nil
	}
	return []api.CacheObject{{Level: l3Level, CPUs: span(0, int(n))}}, nil
}
