package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontomap/diag"
	"github.com/c360studio/ontomap/subgraph"
)

func tierGraph() *subgraph.Graph {
	// A -> B -> C plus the shortcut A -> C.
	g := subgraph.NewGraph()
	g.AddEdge("A_1", "B_1")
	g.AddEdge("B_1", "C_1")
	g.AddEdge("A_1", "C_1")
	return g
}

func newClosure(g *subgraph.Graph) *subgraph.Closure {
	return subgraph.NewClosure(g, diag.NewCollector(), discardLogger())
}

func TestOrganoidIndex(t *testing.T) {
	index := OrganoidIndex([]string{"C_1", "C_1 (organoid)", "D_1 (cell culture)"})

	assert.Equal(t, map[string]string{"C_1": "C_1 (organoid)"}, index)
}

func TestDescendantsTierRestriction(t *testing.T) {
	tiers := [][]string{{"A_1"}, {"B_1"}, {"C_1"}}
	got := Descendants(tiers, newClosure(tierGraph()), diag.NewCollector(), discardLogger())

	require.Contains(t, got, "A:1")
	assert.ElementsMatch(t, []string{"B:1", "C:1"}, got["A:1"])
	assert.ElementsMatch(t, []string{"C:1"}, got["B:1"])
	// The lowest tier has no entry at all.
	assert.NotContains(t, got, "C:1")
	assert.Len(t, got, 2)
}

func TestDescendantsRestrictsToLowerTiersOnly(t *testing.T) {
	// B's tier may not include other members of its own tier.
	g := subgraph.NewGraph()
	g.AddEdge("A_1", "B_1")
	g.AddEdge("B_1", "B_2")
	g.AddEdge("B_2", "C_1")
	tiers := [][]string{{"A_1"}, {"B_1", "B_2"}, {"C_1"}}

	got := Descendants(tiers, newClosure(g), diag.NewCollector(), discardLogger())

	assert.ElementsMatch(t, []string{"C:1"}, got["B:1"], "sibling tier member B_2 is not acceptable for B_1")
}

func TestDescendantsOrganoidSplice(t *testing.T) {
	g := tierGraph()
	tiers := [][]string{{"A_1"}, {"B_1"}, {"C_1", "C_1 (organoid)"}}

	got := Descendants(tiers, newClosure(g), diag.NewCollector(), discardLogger())

	// A's descendants include stem C and its registered organoid variant,
	// even though the variant is not a graph descendant.
	assert.ElementsMatch(t, []string{"B:1", "C:1", "C:1 (organoid)"}, got["A:1"])
}

func TestDescendantsTierTermOwnVariantSpliced(t *testing.T) {
	g := subgraph.NewGraph()
	g.AddEdge("A_1", "B_1")
	tiers := [][]string{{"B_1"}, {"B_1 (organoid)"}}

	got := Descendants(tiers, newClosure(g), diag.NewCollector(), discardLogger())

	// B_1 has no acceptable graph descendants, but its own organoid variant
	// is registered in the acceptable set and is spliced in.
	assert.ElementsMatch(t, []string{"B:1 (organoid)"}, got["B:1"])
}

func TestDescendantsEmptyEntriesOmitted(t *testing.T) {
	g := subgraph.NewGraph()
	g.AddNode("A_1")
	tiers := [][]string{{"A_1"}, {"C_1"}}

	got := Descendants(tiers, newClosure(g), diag.NewCollector(), discardLogger())

	assert.Empty(t, got)
}

func TestDescendantsSingleTierYieldsNothing(t *testing.T) {
	got := Descendants([][]string{{"A_1"}}, newClosure(tierGraph()), diag.NewCollector(), discardLogger())
	assert.Empty(t, got)
}

func TestDescendantsNoDuplicateValues(t *testing.T) {
	// The variant is both an acceptable descendant in the graph and a splice
	// target via its stem; it must appear once.
	g := subgraph.NewGraph()
	g.AddEdge("A_1", "C_1")
	g.AddEdge("A_1", "C_1 (organoid)")
	tiers := [][]string{{"A_1"}, {"C_1", "C_1 (organoid)"}}

	got := Descendants(tiers, newClosure(g), diag.NewCollector(), discardLogger())

	assert.ElementsMatch(t, []string{"C:1", "C:1 (organoid)"}, got["A:1"])
}
