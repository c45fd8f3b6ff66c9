package ontology

import (
	"errors"
	"log/slog"

	"github.com/c360studio/ontomap/diag"
)

// Adapter wraps a Store with the two child-lookup queries used by the
// subgraph builder. Unknown terms are reported as diagnostics and treated as
// having no relationships; they require manual curation, not a crash.
type Adapter struct {
	store  *Store
	diags  *diag.Collector
	logger *slog.Logger
}

// NewAdapter creates an adapter over the given store.
func NewAdapter(store *Store, diags *diag.Collector, logger *slog.Logger) *Adapter {
	return &Adapter{store: store, diags: diags, logger: logger}
}

// DirectDescendants returns the direct is-a children of term. An unknown
// term yields an empty result and a not-found diagnostic.
func (a *Adapter) DirectDescendants(term string) []string {
	children, err := a.store.ISAChildren(term)
	if err != nil {
		a.reportNotFound(term, "direct_descendants", err)
		return nil
	}
	return children
}

// DirectDescendantsAndParts returns the union of the is-a children of term
// and the terms that are part of it. An unknown term yields an empty result
// and a not-found diagnostic.
func (a *Adapter) DirectDescendantsAndParts(term string) []string {
	subtypes, err := a.store.ISAChildren(term)
	if err != nil {
		a.reportNotFound(term, "direct_descendants_and_parts", err)
		return nil
	}
	parts, _ := a.store.PartChildren(term)

	seen := make(map[string]struct{}, len(subtypes)+len(parts))
	union := make([]string, 0, len(subtypes)+len(parts))
	for _, child := range append(subtypes, parts...) {
		if _, ok := seen[child]; ok {
			continue
		}
		seen[child] = struct{}{}
		union = append(union, child)
	}
	return union
}

func (a *Adapter) reportNotFound(term, op string, err error) {
	if !errors.Is(err, ErrNotFound) {
		return
	}
	a.logger.Warn("term not found in the ontology, please investigate", "term", term, "op", op)
	a.diags.NotFound(term, op, "not found in the ontology")
}
