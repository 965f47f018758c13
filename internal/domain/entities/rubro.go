package entities

import "time"

// SourceBaselineMaterializer tags every record this engine writes so
// downstream reconciliation can tell materialized rows from manual ones.
const SourceBaselineMaterializer = "baseline_materializer"

// LineaUnmapped is the sentinel canonical code used when a line item carries
// no identifier at all and no taxonomy mapping applies.
const LineaUnmapped = "UNMAPPED"

// RubroKey is the composite identity of a materialized budget line item.
//
// InstanceID is deterministic: the source estimate's own id when present,
// otherwise a stable hash of its identifying fields plus ordinal index.
// Re-running materialization on unchanged input must reproduce the same keys.
type RubroKey struct {
	ProjectID  string
	BaselineID string
	InstanceID string
}

// Rubro is a canonical budget line item materialized from a baseline estimate.
//
// Storage model (DynamoDB, rubros table):
//   - PK: pk = "PROJECT#<project_id>"
//   - SK: sk = "BASELINE#<baseline_id>#RUBRO#<instance_id>"

type Rubro struct {
	ProjectID       string    `json:"project_id"`
	BaselineID      string    `json:"baseline_id"`
	InstanceID      string    `json:"instance_id"`
	LineaCodigo     string    `json:"linea_codigo"`
	Nombre          string    `json:"nombre"`
	Categoria       string    `json:"categoria"`
	MonthlyUnitCost float64   `json:"monthly_unit_cost"`
	Recurring       bool      `json:"recurring"`
	StartMonth      int       `json:"start_month"`
	EndMonth        int       `json:"end_month"`
	TotalCost       float64   `json:"total_cost"`
	Currency        string    `json:"currency"`
	Source          string    `json:"source"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r Rubro) Key() RubroKey {
	return RubroKey{ProjectID: r.ProjectID, BaselineID: r.BaselineID, InstanceID: r.InstanceID}
}
