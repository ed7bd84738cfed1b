// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-coretypes/api"

// Provider is a scriptable TopologyProvider for tests.
type Provider struct {
	CoreObjects  []api.CoreObject
	CacheObjects []api.CacheObject
	CoresErr     error
	CachesErr    error
}

func (p *Provider) Cores() ([]api.CoreObject, error) {
	if p.CoresErr != nil {
		return nil, p.CoresErr
	}
	return p.CoreObjects, nil
}

// Caches returns the scripted cache objects of the requested level.
func (p *Provider) Caches(level int) ([]api.CacheObject, error) {
	if p.CachesErr != nil {
		return nil, p.CachesErr
	}
	var out []api.CacheObject
	for _, c := range p.CacheObjects {
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out, nil
}
