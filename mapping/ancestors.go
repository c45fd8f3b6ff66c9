// Package mapping produces the portal-facing ancestor and descendant
// dictionaries from a built ontology subgraph. Keys and values are emitted
// in writable (colon) form; terms that fail identifier conversion are
// omitted with a diagnostic rather than poisoning the output.
package mapping

import (
	"log/slog"

	"github.com/c360studio/ontomap/diag"
	"github.com/c360studio/ontomap/subgraph"
	"github.com/c360studio/ontomap/termid"
)

// Ancestors maps every production term to its full ancestor set (including
// itself), keyed and valued in writable form. The mapping covers exactly the
// production term set, minus terms whose identifiers fail conversion.
func Ancestors(prodTerms []string, closure *subgraph.Closure, diags *diag.Collector, logger *slog.Logger) map[string][]string {
	out := make(map[string][]string, len(prodTerms))
	for _, term := range prodTerms {
		key, err := termid.ToWritable(term)
		if err != nil {
			logger.Warn("skipping production term with invalid identifier", "term", term, "error", err)
			diags.InvalidTermID(term, "ancestors_mapping", err.Error())
			continue
		}

		ancestors := closure.Ancestors(term)
		values := make([]string, 0, len(ancestors))
		ok := true
		for ancestor := range ancestors {
			writable, err := termid.ToWritable(ancestor)
			if err != nil {
				logger.Warn("skipping term with unconvertible ancestor", "term", term, "ancestor", ancestor, "error", err)
				diags.InvalidTermID(ancestor, "ancestors_mapping", err.Error())
				ok = false
				break
			}
			values = append(values, writable)
		}
		if !ok {
			continue
		}
		out[key] = values
	}
	return out
}
