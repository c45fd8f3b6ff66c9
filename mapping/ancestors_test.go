package mapping

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontomap/diag"
	"github.com/c360studio/ontomap/subgraph"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAncestorsMapping(t *testing.T) {
	g := subgraph.NewGraph()
	g.AddEdge("UBERON_0000001", "UBERON_0000002")
	g.AddEdge("UBERON_0000002", "UBERON_0000003")
	closure := subgraph.NewClosure(g, diag.NewCollector(), discardLogger())

	got := Ancestors([]string{"UBERON_0000003"}, closure, diag.NewCollector(), discardLogger())

	require.Contains(t, got, "UBERON:0000003")
	assert.ElementsMatch(t,
		[]string{"UBERON:0000001", "UBERON:0000002", "UBERON:0000003"},
		got["UBERON:0000003"])
}

func TestAncestorsCoversExactlyProductionSet(t *testing.T) {
	g := subgraph.NewGraph()
	g.AddEdge("UBERON_0000001", "UBERON_0000002")
	closure := subgraph.NewClosure(g, diag.NewCollector(), discardLogger())

	got := Ancestors([]string{"UBERON_0000002"}, closure, diag.NewCollector(), discardLogger())

	assert.Len(t, got, 1)
	assert.NotContains(t, got, "UBERON:0000001")
}

func TestAncestorsMissingTermStillMapped(t *testing.T) {
	g := subgraph.NewGraph()
	g.AddNode("UBERON_0000001")
	diags := diag.NewCollector()
	closure := subgraph.NewClosure(g, diags, discardLogger())

	got := Ancestors([]string{"UNKNOWN_0000009"}, closure, diag.NewCollector(), discardLogger())

	assert.Equal(t, []string{"UNKNOWN:0000009"}, got["UNKNOWN:0000009"])
	assert.Equal(t, 1, diags.Len())
}

func TestAncestorsOmitsMalformedTerm(t *testing.T) {
	g := subgraph.NewGraph()
	g.AddNode("UBERON_0000001")
	closure := subgraph.NewClosure(g, diag.NewCollector(), discardLogger())
	diags := diag.NewCollector()

	got := Ancestors([]string{"NOSEPARATOR", "UBERON_0000001"}, closure, diags, discardLogger())

	assert.Len(t, got, 1)
	assert.Contains(t, got, "UBERON:0000001")
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, diag.ReasonInvalidTermID, diags.All()[0].Reason)
}

func TestAncestorsVariantTerm(t *testing.T) {
	g := subgraph.NewGraph()
	g.AddEdge("UBERON_0000001", "UBERON_0000002")
	closure := subgraph.NewClosure(g, diag.NewCollector(), discardLogger())

	got := Ancestors([]string{"UBERON_0000002 (organoid)"}, closure, diag.NewCollector(), discardLogger())

	// Variants are leaves of the ancestor lattice: only themselves.
	assert.Equal(t, []string{"UBERON:0000002 (organoid)"}, got["UBERON:0000002 (organoid)"])
}
