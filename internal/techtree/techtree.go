// Package techtree holds the technology adoption catalog and the
// month-window queries the checklist and narrative features are built on.
//
// Nodes describe when a capability plausibly arrives (an inclusive start/end
// month window), not whether it has arrived; the latter is per-user adoption
// state kept elsewhere. Once a node's window has opened the node stays
// relevant forever, so cumulative queries never expire entries.
package techtree

import (
	"sort"

	"rehoboam/internal/models"
)

// Nodes returns the full catalog in authored order. Callers must not mutate
// the returned slice.
func Nodes() []models.TechTreeNode {
	return nodes
}

// NodeByID returns the catalog node with the given id.
func NodeByID(id string) (models.TechTreeNode, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return models.TechTreeNode{}, false
}

// NodesActiveInMonth returns nodes whose window contains the given month,
// inclusive on both ends, in catalog order.
func NodesActiveInMonth(year, month int) []models.TechTreeNode {
	var out []models.TechTreeNode
	for _, n := range nodes {
		if n.ActiveIn(year, month) {
			out = append(out, n)
		}
	}
	return out
}

// NodesUpToMonth returns every node whose window has opened by the given
// month, sorted ascending by window start. Windows never expire here: a node
// whose end month has passed is still included.
func NodesUpToMonth(year, month int) []models.TechTreeNode {
	var out []models.TechTreeNode
	for _, n := range nodes {
		if n.StartedBy(year, month) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WindowStart.Index() < out[j].WindowStart.Index()
	})
	return out
}

// CumulativeNodes is the checklist's working set for a month: everything
// that has plausibly started by then.
func CumulativeNodes(year, month int) []models.TechTreeNode {
	return NodesUpToMonth(year, month)
}

// GroupByCategory buckets nodes into the five fixed categories, preserving
// the input order inside each bucket. Every category is present in the result
// even when its bucket is empty.
func GroupByCategory(list []models.TechTreeNode) map[models.Category][]models.TechTreeNode {
	grouped := make(map[models.Category][]models.TechTreeNode, len(models.AllCategories()))
	for _, c := range models.AllCategories() {
		grouped[c] = []models.TechTreeNode{}
	}
	for _, n := range list {
		grouped[n.Category] = append(grouped[n.Category], n)
	}
	return grouped
}

// NodesGroupedByCategory groups the cumulative working set for a month.
func NodesGroupedByCategory(year, month int) map[models.Category][]models.TechTreeNode {
	return GroupByCategory(NodesUpToMonth(year, month))
}
