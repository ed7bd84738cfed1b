// Package topology
// Author: momentics <momentics@gmail.com>
//
// Hybrid-CPU topology classification for hioload-coretypes.
// Scans a TopologyProvider into provisional core-type groups ordered by
// relative performance, then refines the least performant group by
// detecting cores that sit under no last-level (L3) cache and splitting
// them out into their own core type.
//
// Platform providers are build-tag-partitioned: sysfs on Linux, sysctl
// perf levels on Darwin, and an unavailable stub elsewhere. Scanning runs
// once per topology snapshot and is not on any scheduling-hot path.
package topology
