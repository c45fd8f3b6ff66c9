package mapping

import (
	"log/slog"

	"github.com/c360studio/ontomap/diag"
	"github.com/c360studio/ontomap/subgraph"
	"github.com/c360studio/ontomap/termid"
)

// OrganoidIndex maps each organoid variant in terms to its stem term ID.
// The returned map is keyed by stem, valued with the full variant name.
func OrganoidIndex(terms []string) map[string]string {
	index := make(map[string]string)
	for _, term := range terms {
		if termid.IsOrganoid(term) {
			index[termid.OrganoidStem(term)] = term
		}
	}
	return index
}

// Descendants builds the tier-restricted descendant mapping. tiers is
// ordered highest first (e.g. systems, organs, tissues-in-production); a
// term's descendants are restricted to the tiers strictly below its own, so
// the lowest tier never gets an entry. Organoid variants registered in the
// acceptable set are spliced in as siblings of their stem, both for kept
// descendants and for the tier term itself. Entries with no qualifying
// descendants are omitted.
func Descendants(tiers [][]string, closure *subgraph.Closure, diags *diag.Collector, logger *slog.Logger) map[string][]string {
	out := make(map[string][]string)

	for i, tier := range tiers {
		if i+1 >= len(tiers) {
			// The lowest tier has no eligible lower tiers.
			break
		}

		acceptable := make(map[string]struct{})
		var acceptableList []string
		for _, lower := range tiers[i+1:] {
			for _, term := range lower {
				if _, ok := acceptable[term]; !ok {
					acceptable[term] = struct{}{}
					acceptableList = append(acceptableList, term)
				}
			}
		}
		organoids := OrganoidIndex(acceptableList)

		for _, term := range tier {
			kept := collectDescendants(term, closure, acceptable, organoids)
			if len(kept) == 0 {
				continue
			}

			key, err := termid.ToWritable(term)
			if err != nil {
				logger.Warn("skipping tier term with invalid identifier", "term", term, "error", err)
				diags.InvalidTermID(term, "descendants_mapping", err.Error())
				continue
			}
			values := make([]string, 0, len(kept))
			ok := true
			for _, descendant := range kept {
				writable, err := termid.ToWritable(descendant)
				if err != nil {
					logger.Warn("skipping term with unconvertible descendant", "term", term, "descendant", descendant, "error", err)
					diags.InvalidTermID(descendant, "descendants_mapping", err.Error())
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
	}
	return out
}

// collectDescendants keeps the descendants of term present in the acceptable
// set and splices in registered organoid variants.
func collectDescendants(term string, closure *subgraph.Closure, acceptable map[string]struct{}, organoids map[string]string) []string {
	var kept []string
	seen := make(map[string]struct{})
	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		kept = append(kept, t)
	}

	for descendant := range closure.Descendants(term) {
		if _, ok := acceptable[descendant]; ok {
			add(descendant)
		}
		if variant, ok := organoids[descendant]; ok {
			add(variant)
		}
	}
	if variant, ok := organoids[term]; ok {
		add(variant)
	}
	return kept
}
