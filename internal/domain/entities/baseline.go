package entities

import "time"

// NormalizedBaseline is the canonical shape of an approved financial baseline
// after the normalizer has unwrapped whatever the upstream writer stored.
//
// Domain notes:
//   - Baselines are immutable once approved; this service only reads them.
//   - Estimate arrays are always non-nil (possibly empty) after normalization.
//   - StartDate may be zero when the stored record had no usable date; callers
//     must treat month alignment as unreliable in that case.

type NormalizedBaseline struct {
	BaselineID        string             `json:"baseline_id"`
	ProjectID         string             `json:"project_id"`
	StartDate         time.Time          `json:"start_date"`
	DurationMonths    int                `json:"duration_months"`
	Currency          string             `json:"currency"`
	LaborEstimates    []LaborEstimate    `json:"labor_estimates"`
	NonLaborEstimates []NonLaborEstimate `json:"non_labor_estimates"`
}

// LaborEstimate is one labor cost line from a baseline. Cost may arrive as a
// total, a monthly figure, or an hourly-rate triple; zero means "not provided".
type LaborEstimate struct {
	ID            string  `json:"id"`
	RubroID       string  `json:"rubro_id"`
	Role          string  `json:"role"`
	Level         string  `json:"level"`
	TotalCost     float64 `json:"total_cost"`
	MonthlyCost   float64 `json:"monthly_cost"`
	HourlyRate    float64 `json:"hourly_rate"`
	HoursPerMonth float64 `json:"hours_per_month"`
	FTECount      float64 `json:"fte_count"`
	OnCostPct     float64 `json:"on_cost_pct"`
	StartMonth    int     `json:"start_month"`
	EndMonth      int     `json:"end_month"`
}

// NonLaborEstimate is one non-labor cost line (licenses, hosting, travel...).
// When OneTime is set the month range is ignored and the full amount lands on
// StartMonth.
type NonLaborEstimate struct {
	ID          string  `json:"id"`
	RubroID     string  `json:"rubro_id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	OneTime     bool    `json:"one_time"`
	StartMonth  int     `json:"start_month"`
	EndMonth    int     `json:"end_month"`
}

// EstimateCount is used by input-shape validation: a baseline with zero
// estimates cannot be materialized.
func (b NormalizedBaseline) EstimateCount() int {
	return len(b.LaborEstimates) + len(b.NonLaborEstimates)
}
