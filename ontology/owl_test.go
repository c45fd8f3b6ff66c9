package ontology

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontomap/diag"
)

// fixtureOWL models a small UBERON-like fragment: an eye with a retina that
// is part of it, and a photoreceptor array that both subclasses retina and
// is part of the eye (diamond via mixed relations).
const fixtureOWL = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000970">
    <rdfs:label>eye</rdfs:label>
  </owl:Class>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000966">
    <rdfs:label>retina</rdfs:label>
    <rdfs:subClassOf>
      <owl:Restriction>
        <owl:onProperty rdf:resource="http://purl.obolibrary.org/obo/BFO_0000050"/>
        <owl:someValuesFrom rdf:resource="http://purl.obolibrary.org/obo/UBERON_0000970"/>
      </owl:Restriction>
    </rdfs:subClassOf>
  </owl:Class>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0010230">
    <rdfs:label>photoreceptor array</rdfs:label>
    <rdfs:subClassOf rdf:resource="http://purl.obolibrary.org/obo/UBERON_0000966"/>
    <rdfs:subClassOf>
      <owl:Restriction>
        <owl:onProperty rdf:resource="http://purl.obolibrary.org/obo/BFO_0000050"/>
        <owl:someValuesFrom rdf:resource="http://purl.obolibrary.org/obo/UBERON_0000970"/>
      </owl:Restriction>
    </rdfs:subClassOf>
  </owl:Class>
</rdf:RDF>`

func TestParseISAAndPartOf(t *testing.T) {
	diags := diag.NewCollector()
	store, err := Parse(strings.NewReader(fixtureOWL), diags)
	require.NoError(t, err)

	assert.Equal(t, 3, store.TermCount())
	assert.True(t, store.Known("UBERON_0000970"))

	isa, err := store.ISAChildren("UBERON_0000966")
	require.NoError(t, err)
	assert.Equal(t, []string{"UBERON_0010230"}, isa)

	parts, err := store.PartChildren("UBERON_0000970")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"UBERON_0000966", "UBERON_0010230"}, parts)

	assert.Zero(t, diags.Len())
}

func TestParseSkipsNonPartOfRestrictions(t *testing.T) {
	const owl = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000001">
    <rdfs:subClassOf>
      <owl:Restriction>
        <owl:onProperty rdf:resource="http://purl.obolibrary.org/obo/RO_0002202"/>
        <owl:someValuesFrom rdf:resource="http://purl.obolibrary.org/obo/UBERON_0000002"/>
      </owl:Restriction>
    </rdfs:subClassOf>
  </owl:Class>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000002"/>
</rdf:RDF>`

	diags := diag.NewCollector()
	store, err := Parse(strings.NewReader(owl), diags)
	require.NoError(t, err)

	parts, err := store.PartChildren("UBERON_0000002")
	require.NoError(t, err)
	assert.Empty(t, parts)
	assert.Zero(t, diags.Len(), "develops-from restriction is not malformed, just irrelevant")
}

func TestParseMalformedRestriction(t *testing.T) {
	// Two someValuesFrom targets in one restriction slot.
	const owl = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000001">
    <rdfs:subClassOf>
      <owl:Restriction>
        <owl:onProperty rdf:resource="http://purl.obolibrary.org/obo/BFO_0000050"/>
        <owl:someValuesFrom rdf:resource="http://purl.obolibrary.org/obo/UBERON_0000002"/>
        <owl:someValuesFrom rdf:resource="http://purl.obolibrary.org/obo/UBERON_0000003"/>
      </owl:Restriction>
    </rdfs:subClassOf>
  </owl:Class>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000002"/>
</rdf:RDF>`

	diags := diag.NewCollector()
	store, err := Parse(strings.NewReader(owl), diags)
	require.NoError(t, err)

	parts, err := store.PartChildren("UBERON_0000002")
	require.NoError(t, err)
	assert.Empty(t, parts)

	require.Equal(t, 1, diags.Len())
	assert.Equal(t, diag.ReasonMalformedAxiom, diags.All()[0].Reason)
	assert.Equal(t, "UBERON_0000001", diags.All()[0].Entity)
}

func TestParseFiltersBottomClass(t *testing.T) {
	const owl = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000001">
    <rdfs:subClassOf rdf:resource="http://www.w3.org/2002/07/owl#Nothing"/>
    <rdfs:subClassOf rdf:resource="http://purl.obolibrary.org/obo/UBERON_0000002"/>
  </owl:Class>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000002"/>
</rdf:RDF>`

	diags := diag.NewCollector()
	store, err := Parse(strings.NewReader(owl), diags)
	require.NoError(t, err)

	isa, err := store.ISAChildren("UBERON_0000002")
	require.NoError(t, err)
	assert.Equal(t, []string{"UBERON_0000001"}, isa)
	assert.False(t, store.Known("Nothing"))
}

func TestParseSkipsAnonymousClasses(t *testing.T) {
	const owl = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class>
    <rdfs:subClassOf rdf:resource="http://purl.obolibrary.org/obo/UBERON_0000002"/>
  </owl:Class>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/UBERON_0000002"/>
</rdf:RDF>`

	diags := diag.NewCollector()
	store, err := Parse(strings.NewReader(owl), diags)
	require.NoError(t, err)

	assert.Equal(t, 1, store.TermCount())
	isa, err := store.ISAChildren("UBERON_0000002")
	require.NoError(t, err)
	assert.Empty(t, isa)
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uberon-2024-01-01.owl")
	require.NoError(t, os.WriteFile(path, []byte(fixtureOWL), 0644))

	store, err := LoadGlob(filepath.Join(dir, "uberon-*.owl"), diag.NewCollector())
	require.NoError(t, err)
	assert.Equal(t, 3, store.TermCount())
}

func TestLoadGlobRequiresSingleMatch(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadGlob(filepath.Join(dir, "uberon-*.owl"), diag.NewCollector())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matched 0 files")
}
