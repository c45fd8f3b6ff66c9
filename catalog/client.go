// Package catalog fetches the set of ontology terms currently used in the
// data portal's production corpus. Mappings are only computed for terms in
// this set.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/c360studio/ontomap/diag"
	"github.com/c360studio/ontomap/termid"
)

// datasetsIndexPath is the portal endpoint listing all datasets with their
// tissue and cell type annotations.
const datasetsIndexPath = "/dp/v1/datasets/index"

// annotation is one ontology-term annotation on a dataset.
type annotation struct {
	OntologyTermID string `json:"ontology_term_id"`
}

// dataset is the subset of the datasets index entry the core consumes.
type dataset struct {
	Tissue   []annotation `json:"tissue"`
	CellType []annotation `json:"cell_type"`
}

// TermSets holds the de-duplicated production term IDs per domain, in
// internal form, sorted.
type TermSets struct {
	Tissues   []string
	CellTypes []string
}

// Client fetches the production term sets from the portal API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client for the given portal base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch retrieves the datasets index and returns the de-duplicated tissue
// and cell type term sets. Annotations with malformed term IDs are skipped
// with a diagnostic; the fetch itself failing is fatal.
func (c *Client) Fetch(ctx context.Context, diags *diag.Collector) (TermSets, error) {
	url := c.baseURL + datasetsIndexPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return TermSets{}, fmt.Errorf("build datasets index request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TermSets{}, fmt.Errorf("fetch datasets index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return TermSets{}, fmt.Errorf("fetch datasets index: unexpected status %d: %s", resp.StatusCode, body)
	}

	var datasets []dataset
	if err := json.NewDecoder(resp.Body).Decode(&datasets); err != nil {
		return TermSets{}, fmt.Errorf("decode datasets index: %w", err)
	}

	tissues := make(map[string]struct{})
	cellTypes := make(map[string]struct{})
	for _, ds := range datasets {
		c.collect(ds.Tissue, tissues, diags)
		c.collect(ds.CellType, cellTypes, diags)
	}

	sets := TermSets{
		Tissues:   sortedKeys(tissues),
		CellTypes: sortedKeys(cellTypes),
	}
	c.logger.Info("fetched production term sets",
		"datasets", len(datasets),
		"tissues", len(sets.Tissues),
		"cell_types", len(sets.CellTypes))
	return sets, nil
}

// collect converts each annotation's term ID to internal form and adds it to
// the set. A malformed ID skips that annotation only.
func (c *Client) collect(annotations []annotation, set map[string]struct{}, diags *diag.Collector) {
	for _, a := range annotations {
		internal, err := termid.ToInternal(a.OntologyTermID)
		if err != nil {
			c.logger.Warn("skipping annotation with invalid term id", "term", a.OntologyTermID, "error", err)
			diags.InvalidTermID(a.OntologyTermID, "catalog_fetch", err.Error())
			continue
		}
		set[internal] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
