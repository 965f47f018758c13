package response

import (
	"presupuesto_svc/internal/domain/entities"
	"presupuesto_svc/internal/usecase"
)

type RubroMaterializationResponse struct {
	RunID         string   `json:"run_id"`
	DryRun        bool     `json:"dry_run"`
	RubrosPlanned int      `json:"rubros_planned"`
	RubrosWritten int      `json:"rubros_written"`
	RubrosUpdated int      `json:"rubros_updated"`
	RubrosSkipped int      `json:"rubros_skipped"`
	Warnings      []string `json:"warnings"`
}

type AllocationMaterializationResponse struct {
	RunID                  string   `json:"run_id"`
	DryRun                 bool     `json:"dry_run"`
	AllocationsAttempted   int      `json:"allocations_attempted"`
	AllocationsWritten     int      `json:"allocations_written"`
	AllocationsSkipped     int      `json:"allocations_skipped"`
	AllocationsOverwritten int      `json:"allocations_overwritten"`
	Warnings               []string `json:"warnings"`
}

type MaterializationRunResponse struct {
	BaselineID  string                            `json:"baseline_id"`
	ProjectID   string                            `json:"project_id"`
	Rubros      RubroMaterializationResponse      `json:"rubros"`
	Allocations AllocationMaterializationResponse `json:"allocations"`
	Warnings    []string                          `json:"warnings"`
}

func FromRubroResult(r usecase.RubroResult) RubroMaterializationResponse {
	return RubroMaterializationResponse{
		RunID:         r.RunID,
		DryRun:        r.DryRun,
		RubrosPlanned: r.RubrosPlanned,
		RubrosWritten: r.RubrosWritten,
		RubrosUpdated: r.RubrosUpdated,
		RubrosSkipped: r.RubrosSkipped,
		Warnings:      emptyIfNil(r.Warnings),
	}
}

func FromAllocationResult(r usecase.AllocationResult) AllocationMaterializationResponse {
	return AllocationMaterializationResponse{
		RunID:                  r.RunID,
		DryRun:                 r.DryRun,
		AllocationsAttempted:   r.AllocationsAttempted,
		AllocationsWritten:     r.AllocationsWritten,
		AllocationsSkipped:     r.AllocationsSkipped,
		AllocationsOverwritten: r.AllocationsOverwritten,
		Warnings:               emptyIfNil(r.Warnings),
	}
}

func FromRunResult(r usecase.RunResult) MaterializationRunResponse {
	return MaterializationRunResponse{
		BaselineID:  r.BaselineID,
		ProjectID:   r.ProjectID,
		Rubros:      FromRubroResult(r.Rubros),
		Allocations: FromAllocationResult(r.Allocations),
		Warnings:    emptyIfNil(r.Warnings),
	}
}

type RubroResponse struct {
	ProjectID       string  `json:"project_id"`
	BaselineID      string  `json:"baseline_id"`
	InstanceID      string  `json:"instance_id"`
	LineaCodigo     string  `json:"linea_codigo"`
	Nombre          string  `json:"nombre"`
	Categoria       string  `json:"categoria"`
	MonthlyUnitCost float64 `json:"monthly_unit_cost"`
	Recurring       bool    `json:"recurring"`
	StartMonth      int     `json:"start_month"`
	EndMonth        int     `json:"end_month"`
	TotalCost       float64 `json:"total_cost"`
	Currency        string  `json:"currency"`
}

func FromRubros(items []entities.Rubro) []RubroResponse {
	out := make([]RubroResponse, 0, len(items))
	for _, r := range items {
		out = append(out, RubroResponse{
			ProjectID:       r.ProjectID,
			BaselineID:      r.BaselineID,
			InstanceID:      r.InstanceID,
			LineaCodigo:     r.LineaCodigo,
			Nombre:          r.Nombre,
			Categoria:       r.Categoria,
			MonthlyUnitCost: r.MonthlyUnitCost,
			Recurring:       r.Recurring,
			StartMonth:      r.StartMonth,
			EndMonth:        r.EndMonth,
			TotalCost:       r.TotalCost,
			Currency:        r.Currency,
		})
	}
	return out
}

type AllocationResponse struct {
	ProjectID        string  `json:"project_id"`
	BaselineID       string  `json:"baseline_id"`
	MonthIndex       int     `json:"month_index"`
	CalendarMonth    string  `json:"calendar_month"`
	CanonicalRubroID string  `json:"canonical_rubro_id"`
	Planned          float64 `json:"planned"`
	Forecast         float64 `json:"forecast"`
	Actual           float64 `json:"actual"`
	Currency         string  `json:"currency"`
}

func FromAllocations(items []entities.Allocation) []AllocationResponse {
	out := make([]AllocationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AllocationResponse{
			ProjectID:        a.ProjectID,
			BaselineID:       a.BaselineID,
			MonthIndex:       a.MonthIndex,
			CalendarMonth:    a.CalendarMonth,
			CanonicalRubroID: a.CanonicalRubroID,
			Planned:          a.Planned,
			Forecast:         a.Forecast,
			Actual:           a.Actual,
			Currency:         a.Currency,
		})
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
