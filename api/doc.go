// Package api
// Author: momentics <momentics@gmail.com>
//
// Shared contracts for hioload-coretypes: the hardware topology provider
// capability interface, core-type descriptors, and the error taxonomy used
// across the classifier, registry and constraint layers.
//
// The concrete hardware binding (sysfs, sysctl, or a fake in tests) lives
// behind TopologyProvider so classification logic never touches a platform
// API directly.
package api
