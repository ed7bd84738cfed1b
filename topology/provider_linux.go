//go:build linux
// +build linux

// File: topology/provider_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux sysfs topology provider. Reads hybrid core classes from the
// cpu_core/cpu_atom device masks (Intel) or per-CPU cpu_capacity values
// (arm big.LITTLE), and L3 sharing from the per-CPU cache index nodes.

package topology

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"unsafe"

	"github.com/eapache/queue"
	"golang.org/x/sys/unix"
	"k8s.io/utils/cpuset"

	"github.com/momentics/hioload-coretypes/api"
)

const (
	sysCPURoot = "/sys/devices/system/cpu"
	sysDevRoot = "/sys/devices"
)

// sysfsProvider enumerates topology objects from sysfs.
type sysfsProvider struct {
	cpuRoot string
	devRoot string
}

func newPlatformProvider() api.TopologyProvider {
	return &sysfsProvider{cpuRoot: sysCPURoot, devRoot: sysDevRoot}
}

// Cores enumerates online physical cores with their SMT siblings and
// hardware class.
func (p *sysfsProvider) Cores() ([]api.CoreObject, error) {
	online, err := p.onlineCPUs()
	if err != nil {
		return nil, fmt.Errorf("sysfs online cpus: %w", api.ErrTopologyUnavailable)
	}
	classOf := p.classifier()

	seen := make(map[string]bool)
	var cores []api.CoreObject
	for _, cpu := range online.List() {
		sibs := p.coreSiblings(cpu).Intersection(online)
		if sibs.IsEmpty() {
			sibs = cpuset.New(cpu)
		}
		key := sibs.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		cores = append(cores, api.CoreObject{Efficiency: classOf(cpu), CPUs: sibs})
	}
	return cores, nil
}

// Caches enumerates the unique cache objects of the given level across
// all online CPUs. Hosts without such cache nodes yield an empty result.
func (p *sysfsProvider) Caches(level int) ([]api.CacheObject, error) {
	online, err := p.onlineCPUs()
	if err != nil {
		return nil, fmt.Errorf("sysfs online cpus: %w", api.ErrTopologyUnavailable)
	}

	// FIFO over the per-CPU cache directories; every index node of a
	// matching level contributes one shared-CPU mask.
	pending := queue.New()
	for _, cpu := range online.List() {
		pending.Add(filepath.Join(p.cpuRoot, fmt.Sprintf("cpu%d", cpu), "cache"))
	}

	seen := make(map[string]bool)
	var caches []api.CacheObject
	for pending.Length() > 0 {
		dir := pending.Remove().(string)
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Host exposes no cache nodes for this CPU.
			continue
		}
		for _, e := range entries {
			if !strings.HasPrefix(e.Name(), "index") {
				continue
			}
			idx := filepath.Join(dir, e.Name())
			lv, err := readIntFile(filepath.Join(idx, "level"))
			if err != nil || lv != level {
				continue
			}
			shared, err := readMaskFile(filepath.Join(idx, "shared_cpu_list"))
			if err != nil || shared.IsEmpty() {
				continue
			}
			key := shared.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			caches = append(caches, api.CacheObject{Level: level, CPUs: shared})
		}
	}
	return caches, nil
}

// onlineCPUs reads the online processor list, falling back to the
// scheduler affinity mask of the calling process.
func (p *sysfsProvider) onlineCPUs() (cpuset.CPUSet, error) {
	if s, err := readMaskFile(filepath.Join(p.cpuRoot, "online")); err == nil && !s.IsEmpty() {
		return s, nil
	}
	s := fullSetPlatform()
	if s.IsEmpty() {
		return cpuset.CPUSet{}, fmt.Errorf("no online cpus")
	}
	return s, nil
}

// classifier picks the hardware-class function for this host: Intel
// hybrid device masks when present, arm cpu_capacity otherwise, a single
// class when neither exists.
func (p *sysfsProvider) classifier() func(cpu int) int {
	perf, err := readMaskFile(filepath.Join(p.devRoot, "cpu_core", "cpus"))
	if err == nil && !perf.IsEmpty() {
		return func(cpu int) int {
			if perf.Contains(cpu) {
				return 1
			}
			return 0
		}
	}
	return func(cpu int) int {
		capacity, err := readIntFile(filepath.Join(p.cpuRoot, fmt.Sprintf("cpu%d", cpu), "cpu_capacity"))
		if err != nil {
			return 0
		}
		return capacity
	}
}

// coreSiblings returns the logical processors sharing cpu's physical
// core. Single-threaded cores degrade to {cpu}.
func (p *sysfsProvider) coreSiblings(cpu int) cpuset.CPUSet {
	topo := filepath.Join(p.cpuRoot, fmt.Sprintf("cpu%d", cpu), "topology")
	for _, name := range []string{"core_cpus_list", "thread_siblings_list"} {
		if s, err := readMaskFile(filepath.Join(topo, name)); err == nil && !s.IsEmpty() {
			return s
		}
	}
	return cpuset.New(cpu)
}

// readMaskFile parses a sysfs cpu list file ("0-3,8") into a set.
func readMaskFile(path string) (cpuset.CPUSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return cpuset.CPUSet{}, err
	}
	return cpuset.Parse(strings.TrimSpace(string(b)))
}

// readIntFile parses a single decimal value from a sysfs file.
func readIntFile(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(b)))
}

// fullSetPlatform derives the host processor set from the scheduler
// affinity mask of the calling process, degrading to 0..NumCPU-1.
func fullSetPlatform() cpuset.CPUSet {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err == nil && set.Count() > 0 {
		ids := make([]int, 0, set.Count())
		for i := 0; i < 8*int(unsafe.Sizeof(set)) && len(ids) < set.Count(); i++ {
			if set.IsSet(i) {
				ids = append(ids, i)
			}
		}
		return cpuset.New(ids...)
	}
	return span(0, runtime.NumCPU())
}
