// File: coretype/default.go
// Author: momentics <momentics@gmail.com>
//
// Lazily-initialized process-wide registry. Publish-once, read-many:
// concurrent first callers observe exactly one topology scan and every
// later reader sees the same immutable instance without locking.

package coretype

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-coretypes/topology"
)

var (
	defaultMu  sync.Mutex
	defaultReg atomic.Pointer[Registry]
)

// Default returns the process-wide registry, scanning the platform
// topology on first use. Prefer passing a Registry handle explicitly;
// Default exists for callers without one.
func Default() *Registry {
	if r := defaultReg.Load(); r != nil {
		return r
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if r := defaultReg.Load(); r != nil {
		return r
	}
	r := Build(topology.NewProvider())
	defaultReg.Store(r)
	return r
}

// ResetDefault discards the cached registry so the next Default call
// rescans the topology. Intended for tests only.
func ResetDefault() {
	defaultMu.Lock()
	defaultReg.Store(nil)
	defaultMu.Unlock()
}
