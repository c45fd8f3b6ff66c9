package subgraph

import (
	"log/slog"

	"github.com/c360studio/ontomap/diag"
	"github.com/c360studio/ontomap/termid"
)

// Closure computes ancestor and descendant sets over a built graph.
type Closure struct {
	graph  *Graph
	diags  *diag.Collector
	logger *slog.Logger
}

// NewClosure creates a closure engine over the given graph.
func NewClosure(graph *Graph, diags *diag.Collector, logger *slog.Logger) *Closure {
	return &Closure{graph: graph, diags: diags, logger: logger}
}

// Ancestors returns the set of terms reachable from term via incoming edges,
// including term itself. Instance-qualifier variants are added but never
// expanded past; they are leaves of the ancestor lattice. A term absent from
// the graph yields the singleton set and a diagnostic: it either needs a
// parent or needs adding to the orphan list.
func (c *Closure) Ancestors(term string) map[string]struct{} {
	ancestors := map[string]struct{}{term: {}}

	if termid.IsInstanceVariant(term) {
		return ancestors
	}
	if !c.graph.HasNode(term) {
		c.logger.Warn("term not found in subgraph, either add a parent to it or add it to the orphans list",
			"term", term)
		c.diags.NotFound(term, "ancestors", "not in subgraph; needs a parent or an orphan-list entry")
		return ancestors
	}

	worklist := []string{term}
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, parent := range c.graph.Predecessors(current) {
			if _, seen := ancestors[parent]; seen {
				continue
			}
			ancestors[parent] = struct{}{}
			if termid.IsInstanceVariant(parent) {
				continue
			}
			worklist = append(worklist, parent)
		}
	}
	return ancestors
}

// Descendants returns the set of terms reachable from term via outgoing
// edges, excluding term itself. Instance-qualifier variants are never
// expanded; the tier filter splices variants into results through its own
// organoid index instead. A term absent from the graph yields an empty set
// and a diagnostic.
func (c *Closure) Descendants(term string) map[string]struct{} {
	descendants := make(map[string]struct{})

	if termid.IsInstanceVariant(term) {
		return descendants
	}
	if !c.graph.HasNode(term) {
		c.logger.Warn("term not found in subgraph, please investigate", "term", term)
		c.diags.NotFound(term, "descendants", "not in subgraph")
		return descendants
	}

	visited := map[string]struct{}{term: {}}
	worklist := []string{term}
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, child := range c.graph.Successors(current) {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			descendants[child] = struct{}{}
			if termid.IsInstanceVariant(child) {
				continue
			}
			worklist = append(worklist, child)
		}
	}
	return descendants
}
