package techtree

import (
	"testing"

	"rehoboam/internal/models"
)

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, n := range Nodes() {
		if seen[n.ID] {
			t.Errorf("catalog contains duplicate node id %s", n.ID)
		}
		seen[n.ID] = true

		if err := n.Validate(); err != nil {
			t.Errorf("node %s fails validation: %v", n.ID, err)
		}
	}

	// Dependencies must reference catalog nodes.
	for _, n := range Nodes() {
		for _, dep := range n.DependsOn {
			if !seen[dep] {
				t.Errorf("node %s depends on unknown node %s", n.ID, dep)
			}
		}
	}
}

func TestNodeByID(t *testing.T) {
	n, ok := NodeByID("IND-AI-01")
	if !ok {
		t.Fatal("IND-AI-01 not found")
	}
	if n.Category != models.CategoryIndividual {
		t.Errorf("category = %s, want %s", n.Category, models.CategoryIndividual)
	}

	if _, ok := NodeByID("NO-SUCH-NODE"); ok {
		t.Error("lookup of unknown id should fail")
	}
}

func TestNodesActiveInMonthBoundaries(t *testing.T) {
	// IND-AI-01 runs Jan 2026 through Dec 2028 inclusive.
	tests := []struct {
		name       string
		year       int
		month      int
		wantActive bool
	}{
		{"month before window", 2025, 11, false},
		{"first month of window", 2026, 0, true},
		{"middle of window", 2027, 6, true},
		{"last month of window", 2028, 11, true},
		{"month after window", 2029, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active := NodesActiveInMonth(tt.year, tt.month)
			found := false
			for _, n := range active {
				if n.ID == "IND-AI-01" {
					found = true
				}
			}
			if found != tt.wantActive {
				t.Errorf("IND-AI-01 active in (%d, %d) = %v, want %v", tt.year, tt.month, found, tt.wantActive)
			}
		})
	}
}

func TestNodesUpToMonthNeverExpires(t *testing.T) {
	// Well past IND-AI-01's window end, it must still be in the cumulative set.
	cumulative := NodesUpToMonth(2040, 0)
	found := false
	for _, n := range cumulative {
		if n.ID == "IND-AI-01" {
			found = true
		}
	}
	if !found {
		t.Error("IND-AI-01 missing from cumulative set after its window closed")
	}
	if len(cumulative) != len(Nodes()) {
		t.Errorf("cumulative set at 2040 has %d nodes, want all %d", len(cumulative), len(Nodes()))
	}
}

func TestNodesUpToMonthSortedByWindowStart(t *testing.T) {
	cumulative := NodesUpToMonth(2032, 5)
	if len(cumulative) == 0 {
		t.Fatal("expected a non-empty cumulative set for 2032")
	}
	for i := 1; i < len(cumulative); i++ {
		prev := cumulative[i-1].WindowStart.Index()
		cur := cumulative[i].WindowStart.Index()
		if cur < prev {
			t.Errorf("cumulative set not sorted: %s (index %d) after %s (index %d)",
				cumulative[i].ID, cur, cumulative[i-1].ID, prev)
		}
	}

	// Nothing later than the target month leaks in.
	for _, n := range cumulative {
		if n.WindowStart.Index() > models.MonthIndex(2032, 5) {
			t.Errorf("node %s starts at %v, after the target month", n.ID, n.WindowStart)
		}
	}
}

func TestNodesUpToMonthBeforeCatalog(t *testing.T) {
	if got := NodesUpToMonth(2025, 0); len(got) != 0 {
		t.Errorf("expected empty cumulative set before the catalog starts, got %d nodes", len(got))
	}
}

func TestGroupByCategory(t *testing.T) {
	grouped := NodesGroupedByCategory(2040, 0)

	if len(grouped) != len(models.AllCategories()) {
		t.Fatalf("grouped into %d buckets, want %d", len(grouped), len(models.AllCategories()))
	}

	total := 0
	for _, c := range models.AllCategories() {
		bucket, ok := grouped[c]
		if !ok {
			t.Errorf("category %s missing from result", c)
			continue
		}
		total += len(bucket)
		for _, n := range bucket {
			if n.Category != c {
				t.Errorf("node %s in bucket %s but has category %s", n.ID, c, n.Category)
			}
		}
	}
	if total != len(Nodes()) {
		t.Errorf("buckets hold %d nodes total, want %d", total, len(Nodes()))
	}
}

func TestGroupByCategoryEmptyBuckets(t *testing.T) {
	grouped := GroupByCategory(nil)
	for _, c := range models.AllCategories() {
		bucket, ok := grouped[c]
		if !ok {
			t.Errorf("category %s missing from empty grouping", c)
		}
		if len(bucket) != 0 {
			t.Errorf("category %s should be empty, has %d nodes", c, len(bucket))
		}
	}
}
