// Package ontology loads OWL/RDF-XML ontology releases into an in-memory
// store and exposes the child-lookup queries needed for subgraph extraction.
//
// Both relationship indexes are materialized at load time: is-a from named
// rdfs:subClassOf targets, part-of from owl:Restriction axioms on the
// part-of property (BFO_0000050) with owl:someValuesFrom. The store is
// loaded once per run and read-only afterwards.
package ontology

import "errors"

// ErrNotFound is returned when a term is unknown to the ontology.
var ErrNotFound = errors.New("term not found in ontology")

// Store is an in-memory ontology restricted to the relationships needed for
// descendant traversal. Term IDs are in internal form ("UBERON_0002048").
type Store struct {
	known        map[string]struct{}
	isaChildren  map[string][]string
	partChildren map[string][]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		known:        make(map[string]struct{}),
		isaChildren:  make(map[string][]string),
		partChildren: make(map[string][]string),
	}
}

// addTerm registers a term as known.
func (s *Store) addTerm(id string) {
	s.known[id] = struct{}{}
}

// addISA records child as an is-a child of parent.
func (s *Store) addISA(parent, child string) {
	s.isaChildren[parent] = append(s.isaChildren[parent], child)
}

// addPart records part as a part-of child of whole.
func (s *Store) addPart(whole, part string) {
	s.partChildren[whole] = append(s.partChildren[whole], part)
}

// Known reports whether the term exists in the ontology.
func (s *Store) Known(term string) bool {
	_, ok := s.known[term]
	return ok
}

// TermCount returns the number of known terms.
func (s *Store) TermCount() int {
	return len(s.known)
}

// ISAChildren returns the direct is-a children of term.
// Returns ErrNotFound if the term is unknown to the ontology.
func (s *Store) ISAChildren(term string) ([]string, error) {
	if !s.Known(term) {
		return nil, ErrNotFound
	}
	return s.isaChildren[term], nil
}

// PartChildren returns the direct part-of children of term (terms whose
// restriction axiom expresses "part-of term").
// Returns ErrNotFound if the term is unknown to the ontology.
func (s *Store) PartChildren(term string) ([]string, error) {
	if !s.Known(term) {
		return nil, ErrNotFound
	}
	return s.partChildren[term], nil
}
