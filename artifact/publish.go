package artifact

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Subject prefix for mapping publications.
const mappingSubjectPrefix = "ontomap.mapping"

// MappingMessage is the published form of one mapping artifact.
type MappingMessage struct {
	RunID     string              `json:"run_id"`
	Domain    string              `json:"domain"`
	Kind      Kind                `json:"kind"`
	Mapping   map[string][]string `json:"mapping"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// PublishMapping publishes a completed mapping for portal-side consumers on
// the subject "ontomap.mapping.<domain>.<kind>". A nil connection skips
// publishing so runs without a configured NATS URL degrade gracefully.
func PublishMapping(nc *nats.Conn, runID, domain string, kind Kind, mapping map[string][]string) error {
	if nc == nil {
		return nil
	}

	msg := MappingMessage{
		RunID:     runID,
		Domain:    domain,
		Kind:      kind,
		Mapping:   mapping,
		UpdatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mapping message: %w", err)
	}

	subject := fmt.Sprintf("%s.%s.%s", mappingSubjectPrefix, domain, kind)
	if err := nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish mapping to %s: %w", subject, err)
	}
	return nil
}
