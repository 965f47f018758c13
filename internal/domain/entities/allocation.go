package entities

import "time"

// AllocationKey is the composite identity of one monthly allocation record.
// CalendarMonth is "YYYY-MM".
type AllocationKey struct {
	ProjectID        string
	BaselineID       string
	CalendarMonth    string
	CanonicalRubroID string
}

// Allocation is the per-month planned/forecast/actual record for one rubro.
//
// Storage model (DynamoDB, allocations table):
//   - PK: pk = "PROJECT#<project_id>"
//   - SK: sk = "BASELINE#<baseline_id>#MONTH#<yyyy-mm>#RUBRO#<canonical_rubro_id>"
//
// The materializer only ever initializes Forecast (= Planned) and Actual (= 0).
// Later mutation of those two fields belongs to payroll/invoice reconciliation,
// which is why the writer must never clobber a non-zero existing value.

type Allocation struct {
	ProjectID        string    `json:"project_id"`
	BaselineID       string    `json:"baseline_id"`
	MonthIndex       int       `json:"month_index"`
	CalendarMonth    string    `json:"calendar_month"`
	CanonicalRubroID string    `json:"canonical_rubro_id"`
	Planned          float64   `json:"planned"`
	Forecast         float64   `json:"forecast"`
	Actual           float64   `json:"actual"`
	Currency         string    `json:"currency"`
	Source           string    `json:"source"`
	LineItemID       string    `json:"line_item_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (a Allocation) Key() AllocationKey {
	return AllocationKey{
		ProjectID:        a.ProjectID,
		BaselineID:       a.BaselineID,
		CalendarMonth:    a.CalendarMonth,
		CanonicalRubroID: a.CanonicalRubroID,
	}
}
