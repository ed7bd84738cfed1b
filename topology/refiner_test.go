package topology_test

import (
	"testing"

	"k8s.io/utils/cpuset"

	"github.com/momentics/hioload-coretypes/api"
	"github.com/momentics/hioload-coretypes/fake"
	"github.com/momentics/hioload-coretypes/topology"
)

func refine(t *testing.T, groups []topology.Group, caches []api.CacheObject) []api.CoreType {
	t.Helper()
	types, err := topology.RefineL3(groups, &fake.Provider{CacheObjects: caches})
	if err != nil {
		t.Fatal(err)
	}
	return types
}

func TestRefineMixedSplit(t *testing.T) {
	types := refine(t,
		[]topology.Group{{Rank: 0, CPUs: cpuset.New(0, 1, 2, 3)}},
		[]api.CacheObject{{Level: 3, CPUs: cpuset.New(0, 1)}},
	)
	if len(types) != 2 {
		t.Fatalf("expected split into 2 types, got %d", len(types))
	}
	covered, uncovered := types[0], types[1]
	if covered.ID != 0 || covered.Rank != 0 || !covered.HasL3Cache || !covered.CPUs.Equals(cpuset.New(0, 1)) {
		t.Errorf("covered part wrong: %+v", covered)
	}
	if uncovered.ID != 1 || uncovered.HasL3Cache || !uncovered.CPUs.Equals(cpuset.New(2, 3)) {
		t.Errorf("uncovered part wrong: %+v", uncovered)
	}
	if uncovered.Rank <= covered.Rank {
		t.Errorf("split-off type must rank strictly below every other: %d vs %d", uncovered.Rank, covered.Rank)
	}
}

func TestRefineAllLackL3(t *testing.T) {
	types := refine(t,
		[]topology.Group{{Rank: 0, CPUs: cpuset.New(4, 5)}},
		nil,
	)
	if len(types) != 1 {
		t.Fatalf("expected in-place relabel, got %d types", len(types))
	}
	got := types[0]
	if got.ID != 0 || got.Rank != 0 || got.HasL3Cache || !got.CPUs.Equals(cpuset.New(4, 5)) {
		t.Errorf("relabel wrong: %+v", got)
	}
}

func TestRefineNoneLackL3(t *testing.T) {
	types := refine(t,
		[]topology.Group{{Rank: 0, CPUs: cpuset.New(6, 7)}},
		[]api.CacheObject{{Level: 3, CPUs: cpuset.New(6, 7)}},
	)
	if len(types) != 1 {
		t.Fatalf("expected unchanged group, got %d types", len(types))
	}
	if !types[0].HasL3Cache || !types[0].CPUs.Equals(cpuset.New(6, 7)) {
		t.Errorf("group must stay under L3: %+v", types[0])
	}
}

func TestRefineForeignCacheDoesNotShrink(t *testing.T) {
	// An L3 object disjoint from the group covers nothing in it.
	types := refine(t,
		[]topology.Group{{Rank: 0, CPUs: cpuset.New(2, 3)}},
		[]api.CacheObject{{Level: 3, CPUs: cpuset.New(0, 1)}},
	)
	if len(types) != 1 || types[0].HasL3Cache {
		t.Errorf("disjoint cache must leave the group fully uncovered: %+v", types)
	}
}

func TestRefineOnlyLeastPerformantExamined(t *testing.T) {
	// The performance group has no L3 either, but refinement only ever
	// touches the least performant tier.
	types := refine(t,
		[]topology.Group{
			{Rank: 0, CPUs: cpuset.New(0, 1)},
			{Rank: 1, CPUs: cpuset.New(2, 3)},
		},
		[]api.CacheObject{{Level: 3, CPUs: cpuset.New(2, 3)}},
	)
	if len(types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(types))
	}
	if !types[0].HasL3Cache {
		t.Errorf("rank-0 group must keep HasL3Cache=true: %+v", types[0])
	}
	if !types[1].HasL3Cache {
		t.Errorf("covered least performant group must keep HasL3Cache=true: %+v", types[1])
	}
}

func TestRefineDisjointCoverage(t *testing.T) {
	groups := []topology.Group{
		{Rank: 0, CPUs: cpuset.New(0, 1, 2, 3)},
		{Rank: 1, CPUs: cpuset.New(4, 5, 6, 7)},
	}
	types := refine(t, groups,
		[]api.CacheObject{{Level: 3, CPUs: cpuset.New(0, 1, 2, 3, 4, 5)}},
	)

	union := cpuset.New()
	for i, a := range types {
		for j, b := range types {
			if i != j && !a.CPUs.Intersection(b.CPUs).IsEmpty() {
				t.Errorf("masks of types %d and %d overlap", a.ID, b.ID)
			}
		}
		union = union.Union(types[i].CPUs)
	}
	full := cpuset.New(0, 1, 2, 3, 4, 5, 6, 7)
	if !union.Equals(full) {
		t.Errorf("refinement lost or gained processors: union=%s want=%s", union, full)
	}

	ranks := make(map[int]bool)
	for _, ct := range types {
		if ranks[ct.Rank] {
			t.Errorf("duplicate rank %d", ct.Rank)
		}
		ranks[ct.Rank] = true
	}
}
