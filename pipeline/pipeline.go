// Package pipeline orchestrates a complete mapping run: fetch the production
// term sets, extract each domain's ontology subgraph, compute the ancestor
// and descendant mappings, and persist the artifacts.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"golang.org/x/sync/errgroup"

	"github.com/c360studio/ontomap/artifact"
	"github.com/c360studio/ontomap/catalog"
	"github.com/c360studio/ontomap/config"
	"github.com/c360studio/ontomap/diag"
	"github.com/c360studio/ontomap/mapping"
	"github.com/c360studio/ontomap/ontology"
	"github.com/c360studio/ontomap/subgraph"
)

// Artifact file names, one ancestor and one descendant mapping per domain.
const (
	TissueAncestorsFile     = "tissue_ontology_mapping.json"
	TissueDescendantsFile   = "tissue_descendants.json"
	CellTypeAncestorsFile   = "cell_type_ontology_mapping.json"
	CellTypeDescendantsFile = "cell_type_descendants.json"
)

// Domain names used in artifacts, metrics and logs.
const (
	DomainTissue   = "tissue"
	DomainCellType = "cell_type"
)

// domainSpec bundles everything one domain run needs. The two domains share
// one architecture and differ only in traversal kind and term lists.
type domainSpec struct {
	name            string
	ontologyGlob    string
	traversal       subgraph.Traversal
	roots           []string
	tiers           [][]string
	prodTerms       []string
	ancestorsFile   string
	descendantsFile string
}

// Pipeline drives the two domain runs.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *Metrics
	nc      *nats.Conn
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config, logger *slog.Logger, metrics *Metrics) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger, metrics: metrics}
}

// SetNATS attaches an optional NATS connection for mapping publication.
// A nil connection disables publishing.
func (p *Pipeline) SetNATS(nc *nats.Conn) {
	p.nc = nc
}

// Run executes one complete mapping run and returns its manifest. The two
// domains run concurrently over disjoint graphs; a failure in one does not
// stop the other, and the first failure is returned after both finish.
func (p *Pipeline) Run(ctx context.Context) (*artifact.Manifest, error) {
	start := time.Now()
	manifest := artifact.NewManifest()
	runDiags := diag.NewCollector()

	p.logger.Info("starting mapping run", "run_id", manifest.RunID)

	client := catalog.NewClient(p.cfg.Catalog.BaseURL, p.cfg.Catalog.Timeout, p.logger)
	terms, err := client.Fetch(ctx, runDiags)
	if err != nil {
		return nil, fmt.Errorf("fetch production terms: %w", err)
	}

	writer, err := artifact.NewWriter(p.cfg.Output.Dir)
	if err != nil {
		return nil, err
	}

	specs := []domainSpec{
		{
			name:            DomainTissue,
			ontologyGlob:    p.cfg.Tissue.Ontology,
			traversal:       subgraph.TraversalIsAAndParts,
			roots:           append(append([]string{}, p.cfg.Tissue.Systems...), p.cfg.Tissue.Orphans...),
			tiers:           [][]string{p.cfg.Tissue.Systems, p.cfg.Tissue.Organs, terms.Tissues},
			prodTerms:       terms.Tissues,
			ancestorsFile:   TissueAncestorsFile,
			descendantsFile: TissueDescendantsFile,
		},
		{
			name:            DomainCellType,
			ontologyGlob:    p.cfg.CellType.Ontology,
			traversal:       subgraph.TraversalIsA,
			roots:           append(append([]string{}, p.cfg.CellType.Classes...), p.cfg.CellType.Orphans...),
			tiers:           [][]string{p.cfg.CellType.Classes, p.cfg.CellType.Subclasses, terms.CellTypes},
			prodTerms:       terms.CellTypes,
			ancestorsFile:   CellTypeAncestorsFile,
			descendantsFile: CellTypeDescendantsFile,
		},
	}

	var mu sync.Mutex
	var group errgroup.Group
	for _, spec := range specs {
		spec := spec
		group.Go(func() error {
			summary, diags, err := p.runDomain(spec, writer, manifest.RunID)
			if err != nil {
				p.logger.Error("domain run failed", "domain", spec.name, "error", err)
				return fmt.Errorf("%s domain: %w", spec.name, err)
			}
			mu.Lock()
			manifest.Domains = append(manifest.Domains, summary)
			runDiags.Merge(diags)
			mu.Unlock()
			return nil
		})
	}
	runErr := group.Wait()

	runDiags.Log(p.logger)
	manifest.FinishedAt = time.Now().UTC()
	manifest.Diagnostics = runDiags.All()
	manifest.DiagCounts = runDiags.CountByReason()
	if err := writer.WriteManifest(manifest); err != nil {
		p.logger.Error("failed to write run manifest", "error", err)
	}

	if p.metrics != nil {
		p.metrics.RunsTotal.Inc()
		p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	}

	p.logger.Info("mapping run finished",
		"run_id", manifest.RunID,
		"duration", time.Since(start),
		"diagnostics", len(manifest.Diagnostics),
		"failed", runErr != nil)
	return manifest, runErr
}

// runDomain executes one domain: load ontology, build subgraph, compute both
// mappings, persist and publish.
func (p *Pipeline) runDomain(spec domainSpec, writer *artifact.Writer, runID string) (artifact.DomainSummary, *diag.Collector, error) {
	logger := p.logger.With("domain", spec.name)
	diags := diag.NewCollector()

	store, err := ontology.LoadGlob(spec.ontologyGlob, diags)
	if err != nil {
		return artifact.DomainSummary{}, diags, err
	}
	logger.Info("loaded ontology", "terms", store.TermCount())

	adapter := ontology.NewAdapter(store, diags, logger)
	graph := subgraph.NewBuilder(adapter, spec.traversal).Build(spec.roots)
	logger.Info("extracted subgraph", "nodes", graph.NodeCount(), "edges", graph.EdgeCount())

	closure := subgraph.NewClosure(graph, diags, logger)
	ancestors := mapping.Ancestors(spec.prodTerms, closure, diags, logger)
	descendants := mapping.Descendants(spec.tiers, closure, diags, logger)

	if err := writer.WriteMapping(spec.ancestorsFile, ancestors); err != nil {
		return artifact.DomainSummary{}, diags, err
	}
	if err := writer.WriteMapping(spec.descendantsFile, descendants); err != nil {
		return artifact.DomainSummary{}, diags, err
	}

	if err := artifact.PublishMapping(p.nc, runID, spec.name, artifact.KindAncestors, ancestors); err != nil {
		logger.Warn("failed to publish ancestor mapping", "error", err)
	}
	if err := artifact.PublishMapping(p.nc, runID, spec.name, artifact.KindDescendants, descendants); err != nil {
		logger.Warn("failed to publish descendant mapping", "error", err)
	}

	if p.metrics != nil {
		p.metrics.GraphNodes.WithLabelValues(spec.name).Set(float64(graph.NodeCount()))
		p.metrics.GraphEdges.WithLabelValues(spec.name).Set(float64(graph.EdgeCount()))
		p.metrics.TermsMapped.WithLabelValues(spec.name).Set(float64(len(ancestors)))
		for reason, count := range diags.CountByReason() {
			p.metrics.Diagnostics.WithLabelValues(spec.name, string(reason)).Add(float64(count))
		}
	}

	return artifact.DomainSummary{
		Domain:          spec.name,
		ProductionTerms: len(spec.prodTerms),
		GraphNodes:      graph.NodeCount(),
		GraphEdges:      graph.EdgeCount(),
		AncestorEntries: len(ancestors),
		DescendEntries:  len(descendants),
	}, diags, nil
}
