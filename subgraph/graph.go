// Package subgraph extracts a bounded subgraph of an ontology from a set of
// anchor terms and computes ancestor and descendant closures over it.
package subgraph

// Graph is a directed graph of ontology terms. Edges point from a term to
// its direct descendant. Built once per run, then read-only.
type Graph struct {
	nodes map[string]struct{}
	out   map[string][]string
	in    map[string][]string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		out:   make(map[string][]string),
		in:    make(map[string][]string),
	}
}

// AddNode inserts a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(term string) {
	g.nodes[term] = struct{}{}
}

// AddEdge inserts a directed edge parent -> child, adding both endpoints.
// Duplicate edges are not inserted.
func (g *Graph) AddEdge(parent, child string) {
	g.AddNode(parent)
	g.AddNode(child)
	for _, existing := range g.out[parent] {
		if existing == child {
			return
		}
	}
	g.out[parent] = append(g.out[parent], child)
	g.in[child] = append(g.in[child], parent)
}

// HasNode reports whether the term is present.
func (g *Graph) HasNode(term string) bool {
	_, ok := g.nodes[term]
	return ok
}

// Successors returns the direct descendants of term.
func (g *Graph) Successors(term string) []string {
	return g.out[term]
}

// Predecessors returns the direct ancestors of term.
func (g *Graph) Predecessors(term string) []string {
	return g.in[term]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, children := range g.out {
		n += len(children)
	}
	return n
}

// Nodes returns every node in the graph. Order is unspecified.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	return out
}
