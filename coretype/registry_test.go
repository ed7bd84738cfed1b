package coretype_test

import (
	"errors"
	"sync"
	"testing"

	"k8s.io/utils/cpuset"

	"github.com/momentics/hioload-coretypes/api"
	"github.com/momentics/hioload-coretypes/coretype"
	"github.com/momentics/hioload-coretypes/fake"
)

// splitTopology yields three core types after refinement: performance
// {0,1,2,3}, efficiency-with-L3 {4,5}, efficiency-without-L3 {6,7}.
func splitTopology() *fake.Provider {
	return &fake.Provider{
		CoreObjects: []api.CoreObject{
			{Efficiency: 1, CPUs: cpuset.New(0, 1, 2, 3)},
			{Efficiency: 0, CPUs: cpuset.New(4, 5, 6, 7)},
		},
		CacheObjects: []api.CacheObject{
			{Level: 3, CPUs: cpuset.New(0, 1, 2, 3, 4, 5)},
		},
	}
}

func TestRegistryListOrderAndLookup(t *testing.T) {
	reg := coretype.Build(splitTopology())
	types := reg.List()
	if len(types) != 3 {
		t.Fatalf("expected 3 types, got %d", len(types))
	}
	for i := 1; i < len(types); i++ {
		if types[i].Rank <= types[i-1].Rank {
			t.Errorf("list not rank-ascending at %d: %+v", i, types)
		}
	}

	got, err := reg.Lookup(types[1].ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.CPUs.Equals(cpuset.New(4, 5)) {
		t.Errorf("lookup returned wrong descriptor: %+v", got)
	}

	if _, err := reg.Lookup(99); !errors.Is(err, api.ErrUnknownCoreType) {
		t.Errorf("missing id: expected ErrUnknownCoreType, got %v", err)
	}
}

func TestRegistryDisjointCoverage(t *testing.T) {
	reg := coretype.Build(splitTopology())
	union := cpuset.New()
	for i, a := range reg.List() {
		for j, b := range reg.List() {
			if i != j && !a.CPUs.Intersection(b.CPUs).IsEmpty() {
				t.Errorf("types %d and %d overlap", a.ID, b.ID)
			}
		}
		union = union.Union(a.CPUs)
	}
	if !union.Equals(cpuset.New(0, 1, 2, 3, 4, 5, 6, 7)) {
		t.Errorf("union mismatch: %s", union)
	}
	if reg.TotalCPUs() != 8 {
		t.Errorf("TotalCPUs: got %d, want 8", reg.TotalCPUs())
	}
}

func TestByL3Presence(t *testing.T) {
	reg := coretype.Build(splitTopology())
	with := reg.ByL3Presence(true)
	without := reg.ByL3Presence(false)
	if len(with) != 2 || len(without) != 1 {
		t.Fatalf("L3 partition wrong: with=%d without=%d", len(with), len(without))
	}
	if !without[0].CPUs.Equals(cpuset.New(6, 7)) {
		t.Errorf("no-L3 type mask: %s", without[0].CPUs)
	}
}

func TestFallbackRegistry(t *testing.T) {
	reg := coretype.Build(&fake.Provider{CoresErr: errors.New("enumeration failed")})
	if !reg.Degraded() {
		t.Fatal("provider failure must degrade")
	}
	types := reg.List()
	if len(types) != 1 {
		t.Fatalf("fallback must hold exactly one type, got %d", len(types))
	}
	if types[0].ID != 0 || !types[0].HasL3Cache {
		t.Errorf("fallback descriptor wrong: %+v", types[0])
	}
	if reg.TotalCPUs() < 1 {
		t.Errorf("fallback must cover the full processor set, got %d", reg.TotalCPUs())
	}
}

func TestDefaultPublishOnce(t *testing.T) {
	coretype.ResetDefault()
	defer coretype.ResetDefault()

	const readers = 16
	got := make([]*coretype.Registry, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = coretype.Default()
		}(i)
	}
	wg.Wait()

	if got[0] == nil {
		t.Fatal("Default returned nil")
	}
	for i := 1; i < readers; i++ {
		if got[i] != got[0] {
			t.Fatal("concurrent first callers observed different registries")
		}
	}
	if coretype.Default() != got[0] {
		t.Error("later readers must see the same instance")
	}
}
