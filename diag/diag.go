// Package diag collects structured diagnostics raised during ontology
// traversal and mapping computation. Traversal anomalies (missing terms,
// malformed axioms) degrade their subtree instead of aborting the run, so
// they are accumulated here for manual curation review.
package diag

import (
	"log/slog"
	"sync"
)

// Reason classifies a diagnostic.
type Reason string

const (
	// ReasonNotFound indicates a term was unknown to the ontology provider
	// or absent from the extracted subgraph.
	ReasonNotFound Reason = "not_found"

	// ReasonMalformedAxiom indicates a part-of restriction that could not be
	// resolved to exactly one concrete entity.
	ReasonMalformedAxiom Reason = "malformed_axiom"

	// ReasonInvalidTermID indicates a term identifier that failed codec
	// conversion.
	ReasonInvalidTermID Reason = "invalid_term_id"
)

// Diagnostic records one anomaly with enough context for manual curation.
type Diagnostic struct {
	Entity string `json:"entity"`
	Op     string `json:"op"`
	Reason Reason `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// Collector accumulates diagnostics. Safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records a diagnostic.
func (c *Collector) Add(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// NotFound records a missing-entity diagnostic.
func (c *Collector) NotFound(entity, op, detail string) {
	c.Add(Diagnostic{Entity: entity, Op: op, Reason: ReasonNotFound, Detail: detail})
}

// MalformedAxiom records a malformed-axiom diagnostic.
func (c *Collector) MalformedAxiom(entity, op, detail string) {
	c.Add(Diagnostic{Entity: entity, Op: op, Reason: ReasonMalformedAxiom, Detail: detail})
}

// InvalidTermID records a codec-failure diagnostic.
func (c *Collector) InvalidTermID(entity, op, detail string) {
	c.Add(Diagnostic{Entity: entity, Op: op, Reason: ReasonInvalidTermID, Detail: detail})
}

// All returns a copy of the accumulated diagnostics.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Len returns the number of accumulated diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// CountByReason returns diagnostic counts keyed by reason.
func (c *Collector) CountByReason() map[Reason]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := make(map[Reason]int)
	for _, d := range c.diags {
		counts[d.Reason]++
	}
	return counts
}

// Merge appends all diagnostics from other.
func (c *Collector) Merge(other *Collector) {
	for _, d := range other.All() {
		c.Add(d)
	}
}

// Log emits every accumulated diagnostic at warn level.
func (c *Collector) Log(logger *slog.Logger) {
	for _, d := range c.All() {
		logger.Warn("ontology diagnostic",
			"entity", d.Entity,
			"op", d.Op,
			"reason", string(d.Reason),
			"detail", d.Detail)
	}
}
