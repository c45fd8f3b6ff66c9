package ontology

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/ontomap/diag"
)

// OWL/RDF namespace URIs.
const (
	nsOWL  = "http://www.w3.org/2002/07/owl#"
	nsRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	nsOBO  = "http://purl.obolibrary.org/obo/"
)

// partOfProperty is the OBO Relations Ontology part-of property.
const partOfProperty = "BFO_0000050"

// nothingIRI is the OWL bottom class; entities resolving to it are discarded.
const nothingIRI = nsOWL + "Nothing"

// LoadGlob resolves the doublestar pattern to exactly one ontology file and
// parses it. Configs point patterns at pinned releases, e.g.
// "ontologies/uberon-*.owl".
func LoadGlob(pattern string, diags *diag.Collector) (*Store, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("resolve ontology pattern %q: %w", pattern, err)
	}
	if len(matches) != 1 {
		return nil, fmt.Errorf("ontology pattern %q matched %d files, want exactly 1", pattern, len(matches))
	}
	return LoadFile(matches[0], diags)
}

// LoadFile parses the ontology file at path.
func LoadFile(path string, diags *diag.Collector) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ontology file: %w", err)
	}
	defer f.Close()

	store, err := Parse(f, diags)
	if err != nil {
		return nil, fmt.Errorf("parse ontology file %s: %w", path, err)
	}
	return store, nil
}

// Parse parses an OWL/RDF-XML ontology from r, materializing the is-a and
// part-of child indexes. Malformed part-of restrictions are skipped with a
// diagnostic; they signal an ontology modeling irregularity, not a parse
// failure.
func Parse(r io.Reader, diags *diag.Collector) (*Store, error) {
	decoder := xml.NewDecoder(r)
	store := NewStore()

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case matchElement(se, nsOWL, "Class"):
			if err := parseClass(decoder, se, store, diags); err != nil {
				return nil, err
			}
		case matchElement(se, nsRDF, "RDF"):
			// Container element, descend into it.
		default:
			if err := decoder.Skip(); err != nil {
				return nil, err
			}
		}
	}

	return store, nil
}

// parseClass consumes one owl:Class element, recording the class and its
// subClassOf relationships. Anonymous classes (no rdf:about) are axiom
// bodies, not concrete entities, and are skipped entirely.
func parseClass(decoder *xml.Decoder, se xml.StartElement, store *Store, diags *diag.Collector) error {
	id := internalIDFromIRI(getAttr(se, nsRDF, "about"))
	if id == "" {
		return decoder.Skip()
	}
	store.addTerm(id)

	for {
		tok, err := decoder.Token()
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if matchElement(el, nsRDFS, "subClassOf") {
				if err := parseSubClassOf(decoder, el, id, store, diags); err != nil {
					return err
				}
				continue
			}
			if err := decoder.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseSubClassOf handles one rdfs:subClassOf of the class with the given
// child ID. A named resource target is an is-a parent; a nested
// owl:Restriction on the part-of property makes the child a part of the
// restriction's someValuesFrom target. Restrictions on other properties are
// ignored.
func parseSubClassOf(decoder *xml.Decoder, se xml.StartElement, child string, store *Store, diags *diag.Collector) error {
	if res := getAttr(se, nsRDF, "resource"); res != "" {
		if res != nothingIRI {
			if parent := internalIDFromIRI(res); parent != "" {
				store.addISA(parent, child)
			}
		}
		return decoder.Skip()
	}

	property, targets, err := parseRestriction(decoder)
	if err != nil {
		return err
	}
	if property != partOfProperty {
		return nil
	}

	if len(targets) != 1 {
		diags.MalformedAxiom(child, "parse_part_of_restriction",
			fmt.Sprintf("restriction resolved to %d entities, want 1", len(targets)))
		return nil
	}
	whole := internalIDFromIRI(targets[0])
	if whole == "" || targets[0] == nothingIRI {
		diags.MalformedAxiom(child, "parse_part_of_restriction",
			fmt.Sprintf("restriction target %q is not a concrete entity", targets[0]))
		return nil
	}
	store.addPart(whole, child)
	return nil
}

// parseRestriction consumes the body of a subClassOf containing a nested
// owl:Restriction, returning the restriction property (internal form) and
// every someValuesFrom target IRI found.
func parseRestriction(decoder *xml.Decoder) (string, []string, error) {
	var (
		property string
		targets  []string
		depth    int
	)
	for {
		tok, err := decoder.Token()
		if err != nil {
			return property, targets, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case matchElement(el, nsOWL, "onProperty"):
				if res := getAttr(el, nsRDF, "resource"); res != "" {
					property = internalIDFromIRI(res)
				}
				if err := decoder.Skip(); err != nil {
					return property, targets, err
				}
			case matchElement(el, nsOWL, "someValuesFrom"):
				if res := getAttr(el, nsRDF, "resource"); res != "" {
					targets = append(targets, res)
				}
				if err := decoder.Skip(); err != nil {
					return property, targets, err
				}
			default:
				depth++
			}
		case xml.EndElement:
			depth--
			if depth < 0 {
				return property, targets, nil
			}
		}
	}
}

func matchElement(se xml.StartElement, ns, local string) bool {
	return se.Name.Space == ns && se.Name.Local == local
}

func getAttr(se xml.StartElement, ns, local string) string {
	for _, a := range se.Attr {
		if a.Name.Space == ns && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// internalIDFromIRI converts an OBO IRI to the internal term ID form,
// e.g. "http://purl.obolibrary.org/obo/UBERON_0002048" to "UBERON_0002048".
// Non-OBO IRIs are not concrete ontology entities here; empty is returned.
func internalIDFromIRI(iri string) string {
	if !strings.HasPrefix(iri, nsOBO) {
		return ""
	}
	return iri[len(nsOBO):]
}
