// Package artifact persists generated mappings as JSON files and optionally
// publishes them for portal-side consumers. Mapping documents are unordered
// key/value sets; downstream consumers treat value lists as sets.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontomap/diag"
)

// Kind distinguishes the two mapping artifacts per domain.
type Kind string

const (
	// KindAncestors is the ancestor mapping consumed by the portal backend.
	KindAncestors Kind = "ancestors"

	// KindDescendants is the tier-restricted descendant mapping consumed by
	// the portal frontend.
	KindDescendants Kind = "descendants"
)

// Writer stores mapping artifacts under an output directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteMapping stores a mapping document under the given file name.
func (w *Writer) WriteMapping(fileName string, mapping map[string][]string) error {
	data, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	path := filepath.Join(w.dir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write mapping file: %w", err)
	}
	return nil
}

// DomainSummary records per-domain counts for the run manifest.
type DomainSummary struct {
	Domain          string `json:"domain"`
	ProductionTerms int    `json:"production_terms"`
	GraphNodes      int    `json:"graph_nodes"`
	GraphEdges      int    `json:"graph_edges"`
	AncestorEntries int    `json:"ancestor_entries"`
	DescendEntries  int    `json:"descendant_entries"`
}

// Manifest describes one complete run alongside its mapping files, so
// curators can review accumulated anomalies before promoting the artifacts.
type Manifest struct {
	RunID       string               `json:"run_id"`
	StartedAt   time.Time            `json:"started_at"`
	FinishedAt  time.Time            `json:"finished_at"`
	Domains     []DomainSummary      `json:"domains"`
	Diagnostics []diag.Diagnostic    `json:"diagnostics,omitempty"`
	DiagCounts  map[diag.Reason]int  `json:"diagnostic_counts,omitempty"`
}

// NewManifest creates a manifest with a fresh run ID.
func NewManifest() *Manifest {
	return &Manifest{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
}

// WriteManifest stores the manifest as manifest.json.
func (w *Writer) WriteManifest(m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(w.dir, "manifest.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
