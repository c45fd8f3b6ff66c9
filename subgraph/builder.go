package subgraph

import (
	"github.com/c360studio/ontomap/termid"
)

// Traversal selects which relationship kinds the builder follows.
type Traversal int

const (
	// TraversalIsA follows only is-a (subclass) relationships.
	TraversalIsA Traversal = iota

	// TraversalIsAAndParts follows both is-a and part-of relationships.
	TraversalIsAAndParts
)

// ChildLister is the ontology query surface the builder depends on.
type ChildLister interface {
	DirectDescendants(term string) []string
	DirectDescendantsAndParts(term string) []string
}

// Builder extracts a subgraph by expanding anchor terms through an ontology
// adapter.
type Builder struct {
	adapter   ChildLister
	traversal Traversal
}

// NewBuilder creates a builder using the given adapter and traversal kind.
func NewBuilder(adapter ChildLister, traversal Traversal) *Builder {
	return &Builder{adapter: adapter, traversal: traversal}
}

// Build expands every anchor into graph, visiting each node at most once.
// An already-visited child still receives an edge from each parent that
// reaches it (multiple-inheritance fan-in) but is never re-expanded, which
// keeps the walk bounded on cyclic or diamond-shaped ontology regions.
// Instance-qualifier variants are inserted as terminal leaves.
func (b *Builder) Build(anchors []string) *Graph {
	g := NewGraph()
	for _, anchor := range anchors {
		b.expand(anchor, g)
	}
	return g
}

func (b *Builder) expand(root string, g *Graph) {
	// An anchor with no children still gets a node so that lookups
	// against leaf anchors succeed.
	if g.HasNode(root) {
		return
	}
	g.AddNode(root)

	worklist := []string{root}
	for len(worklist) > 0 {
		term := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if termid.IsInstanceVariant(term) {
			continue
		}

		for _, child := range b.children(term) {
			visited := g.HasNode(child)
			g.AddEdge(term, child)
			if !visited {
				worklist = append(worklist, child)
			}
		}
	}
}

func (b *Builder) children(term string) []string {
	if b.traversal == TraversalIsAAndParts {
		return b.adapter.DirectDescendantsAndParts(term)
	}
	return b.adapter.DirectDescendants(term)
}
