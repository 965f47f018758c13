package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"presupuesto_svc/internal/domain/entities"
	"presupuesto_svc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBaselineID        = errors.New("invalid baseline id")
	ErrBaselineNotFound         = errors.New("baseline not found")
	ErrBaselineWithoutEstimates = errors.New("baseline has no labor or non-labor estimates")
)

// MaterializeOptions controls a single materialization invocation.
//
// DryRun performs all computation but no writes (operator previews).
// ForceRewriteZeros is the explicit escape hatch for repairing
// historically-zeroed allocations; it must stay opt-in.
type MaterializeOptions struct {
	DryRun            bool
	ForceRewriteZeros bool
}

type RubroResult struct {
	RunID         string   `json:"run_id"`
	DryRun        bool     `json:"dry_run"`
	RubrosPlanned int      `json:"rubros_planned"`
	RubrosWritten int      `json:"rubros_written"`
	RubrosUpdated int      `json:"rubros_updated"`
	RubrosSkipped int      `json:"rubros_skipped"`
	Warnings      []string `json:"warnings"`
}

type AllocationResult struct {
	RunID                  string   `json:"run_id"`
	DryRun                 bool     `json:"dry_run"`
	AllocationsAttempted   int      `json:"allocations_attempted"`
	AllocationsWritten     int      `json:"allocations_written"`
	AllocationsSkipped     int      `json:"allocations_skipped"`
	AllocationsOverwritten int      `json:"allocations_overwritten"`
	Warnings               []string `json:"warnings"`
}

type RunResult struct {
	BaselineID  string           `json:"baseline_id"`
	ProjectID   string           `json:"project_id"`
	Rubros      RubroResult      `json:"rubros"`
	Allocations AllocationResult `json:"allocations"`
	Warnings    []string         `json:"warnings"`
}

// IMaterializerUseCase is the engine's public surface.
//
// The same baseline may be materialized concurrently from the HTTP handler,
// the queue consumer and the backfill CLI; correctness rests on deterministic
// composite keys plus the idempotent writer policy, never on locks.

type IMaterializerUseCase interface {
	MaterializeRubros(ctx context.Context, b entities.NormalizedBaseline, opts MaterializeOptions) (RubroResult, error)
	MaterializeAllocations(ctx context.Context, b entities.NormalizedBaseline, opts MaterializeOptions) (AllocationResult, error)
	MaterializeByID(ctx context.Context, baselineID, projectID string, opts MaterializeOptions) (RunResult, error)
}

type MaterializerUseCase struct {
	baselines   interfaces.IBaselineRepository
	rubros      interfaces.IRubroRepository
	allocations interfaces.IAllocationRepository
	resolver    *TaxonomyResolver
	now         func() time.Time
}

var _ IMaterializerUseCase = (*MaterializerUseCase)(nil)

func NewMaterializerUseCase(
	baselines interfaces.IBaselineRepository,
	rubros interfaces.IRubroRepository,
	allocations interfaces.IAllocationRepository,
	resolver *TaxonomyResolver,
) *MaterializerUseCase {
	return &MaterializerUseCase{
		baselines:   baselines,
		rubros:      rubros,
		allocations: allocations,
		resolver:    resolver,
		now:         time.Now,
	}
}

// MaterializeRubros expands a normalized baseline into canonical rubro records
// and persists them idempotently.
func (u *MaterializerUseCase) MaterializeRubros(ctx context.Context, b entities.NormalizedBaseline, opts MaterializeOptions) (RubroResult, error) {
	runID := uuid.NewString()
	log.Printf("[materializer][rubros] start run_id=%s baseline_id=%s project_id=%s dry_run=%v",
		runID, b.BaselineID, b.ProjectID, opts.DryRun)

	if b.EstimateCount() == 0 {
		return RubroResult{}, ErrBaselineWithoutEstimates
	}

	items, warnings := u.buildRubros(ctx, b)
	res := RubroResult{RunID: runID, DryRun: opts.DryRun, RubrosPlanned: len(items), Warnings: warnings}
	if opts.DryRun {
		log.Printf("[materializer][rubros] dry run run_id=%s planned=%d warnings=%d", runID, len(items), len(warnings))
		return res, nil
	}

	stats, err := u.writeRubros(ctx, items)
	if err != nil {
		return res, err
	}
	res.RubrosWritten = stats.Written
	res.RubrosUpdated = stats.Overwritten
	res.RubrosSkipped = stats.Skipped
	log.Printf("[materializer][rubros] done run_id=%s attempted=%d written=%d updated=%d skipped=%d",
		runID, stats.Attempted, stats.Written, stats.Overwritten, stats.Skipped)
	return res, nil
}

// MaterializeAllocations expands a baseline into one allocation record per
// rubro per contract month. It prefers already-materialized rubros (primary
// path) and falls back to raw estimates when none exist yet; both paths feed
// the same expansion, so they cannot diverge on keys.
func (u *MaterializerUseCase) MaterializeAllocations(ctx context.Context, b entities.NormalizedBaseline, opts MaterializeOptions) (AllocationResult, error) {
	runID := uuid.NewString()
	log.Printf("[materializer][allocations] start run_id=%s baseline_id=%s project_id=%s dry_run=%v force_rewrite_zeros=%v",
		runID, b.BaselineID, b.ProjectID, opts.DryRun, opts.ForceRewriteZeros)

	var warnings []string
	var lineItems []resolvedLineItem

	existing, err := u.rubros.QueryByProject(ctx, b.ProjectID)
	if err != nil {
		// Non-fatal: the fallback path can proceed without persisted rubros.
		warnings = append(warnings, "rubro lookup failed, deriving allocations from raw estimates: "+err.Error())
		log.Printf("[materializer][allocations] rubro lookup failed run_id=%s err=%v", runID, err)
		existing = nil
	}

	matched := filterRubrosByBaseline(existing, b.BaselineID)
	if len(matched) > 0 {
		log.Printf("[materializer][allocations] primary path run_id=%s rubros=%d", runID, len(matched))
		lineItems = resolveFromRubros(matched)
	} else {
		if b.EstimateCount() == 0 {
			return AllocationResult{}, ErrBaselineWithoutEstimates
		}
		log.Printf("[materializer][allocations] fallback path run_id=%s labor=%d non_labor=%d",
			runID, len(b.LaborEstimates), len(b.NonLaborEstimates))
		var fw []string
		lineItems, fw = u.resolveFromEstimates(ctx, b)
		warnings = append(warnings, fw...)
	}

	candidates := expandAllocations(b, lineItems, u.now().UTC())
	res := AllocationResult{RunID: runID, DryRun: opts.DryRun, AllocationsAttempted: len(candidates), Warnings: warnings}
	if opts.DryRun {
		log.Printf("[materializer][allocations] dry run run_id=%s planned=%d warnings=%d", runID, len(candidates), len(warnings))
		return res, nil
	}

	stats, err := u.writeAllocations(ctx, candidates, opts.ForceRewriteZeros)
	if err != nil {
		return res, err
	}
	res.AllocationsWritten = stats.Written
	res.AllocationsSkipped = stats.Skipped
	res.AllocationsOverwritten = stats.Overwritten
	log.Printf("[materializer][allocations] done run_id=%s attempted=%d written=%d skipped=%d overwritten=%d",
		runID, stats.Attempted, stats.Written, stats.Skipped, stats.Overwritten)
	return res, nil
}

// MaterializeByID is the trigger-facing entry: it fetches the baseline from
// the store (a queue message body may be stale) and runs both
// materializations.
func (u *MaterializerUseCase) MaterializeByID(ctx context.Context, baselineID, projectID string, opts MaterializeOptions) (RunResult, error) {
	baselineID = strings.TrimSpace(baselineID)
	if baselineID == "" {
		return RunResult{}, ErrInvalidBaselineID
	}

	raw, err := u.baselines.GetRawByID(ctx, baselineID)
	if err != nil {
		return RunResult{}, err
	}
	if len(raw) == 0 {
		return RunResult{}, ErrBaselineNotFound
	}

	b, warnings, err := NormalizeBaseline(raw)
	if err != nil {
		return RunResult{}, err
	}
	if b.BaselineID == "" {
		b.BaselineID = baselineID
	}
	if projectID = strings.TrimSpace(projectID); projectID != "" && projectID != b.ProjectID {
		log.Printf("[materializer][run] trigger project_id=%s disagrees with stored project_id=%s baseline_id=%s, trusting the store",
			projectID, b.ProjectID, baselineID)
		warnings = append(warnings, "trigger project id disagrees with stored baseline, stored value used")
	}

	rubroRes, err := u.MaterializeRubros(ctx, b, opts)
	if err != nil {
		return RunResult{}, err
	}
	allocRes, err := u.MaterializeAllocations(ctx, b, opts)
	if err != nil {
		return RunResult{}, err
	}

	return RunResult{
		BaselineID:  b.BaselineID,
		ProjectID:   b.ProjectID,
		Rubros:      rubroRes,
		Allocations: allocRes,
		Warnings:    warnings,
	}, nil
}

func filterRubrosByBaseline(rubros []entities.Rubro, baselineID string) []entities.Rubro {
	out := make([]entities.Rubro, 0, len(rubros))
	for _, r := range rubros {
		if r.BaselineID == baselineID {
			out = append(out, r)
		}
	}
	return out
}
