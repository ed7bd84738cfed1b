//go:build !linux && !darwin
// +build !linux,!darwin

// File: topology/provider_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub topology provider for unsupported platforms.

package topology

import "github.com/momentics/hioload-coretypes/api"

// stubProvider cannot enumerate anything; the registry degrades to its
// single-descriptor fallback.
type stubProvider struct{}

func newPlatformProvider() api.TopologyProvider {
	return &stubProvider{}
}

func (s *stubProvider) Cores() ([]api.CoreObject, error) {
	return nil, api.ErrTopologyUnavailable
}

func (s *stubProvider) Caches(level int) ([]api.CacheObject, error) {
	return nil, nil
}
