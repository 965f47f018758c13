package usecase

import (
	"context"
	"log"

	"presupuesto_svc/internal/domain/entities"
)

// WriteStats reports what an idempotent write pass did.
type WriteStats struct {
	Attempted   int
	Written     int
	Skipped     int
	Overwritten int
}

type writeDecision int

const (
	decisionWrite writeDecision = iota
	decisionSkip
	decisionOverwrite
)

// decideWrite is the single overwrite policy both record kinds share:
// write if absent; skip if present with a non-zero amount; overwrite only a
// still-zero record, and only when the caller asked for it and the new value
// is positive. Reruns are therefore inert, and a downstream-reconciled value
// can never be clobbered.
func decideWrite(exists bool, existingAmount, newAmount float64, force bool) writeDecision {
	if !exists {
		return decisionWrite
	}
	if existingAmount != 0 {
		return decisionSkip
	}
	if force && newAmount > 0 {
		return decisionOverwrite
	}
	return decisionSkip
}

// writeRubros probes for existing rubros and persists the remainder. A rubro
// whose stored total is still zero is repaired automatically when the new
// total is positive (surfaced as rubros_updated).
func (u *MaterializerUseCase) writeRubros(ctx context.Context, items []entities.Rubro) (WriteStats, error) {
	stats := WriteStats{Attempted: len(items)}
	if len(items) == 0 {
		return stats, nil
	}

	keys := make([]entities.RubroKey, 0, len(items))
	for _, r := range items {
		keys = append(keys, r.Key())
	}
	existing, err := u.rubros.BatchGetByKeys(ctx, keys)
	if err != nil {
		return stats, err
	}

	toWrite := make([]entities.Rubro, 0, len(items))
	for _, r := range items {
		prior, found := existing[r.Key()]
		switch decideWrite(found, prior.TotalCost, r.TotalCost, true) {
		case decisionWrite:
			stats.Written++
			toWrite = append(toWrite, r)
		case decisionOverwrite:
			stats.Overwritten++
			toWrite = append(toWrite, r)
		default:
			stats.Skipped++
		}
	}
	log.Printf("[materializer][writer] rubros attempted=%d existing=%d to_write=%d skipped=%d",
		stats.Attempted, len(existing), len(toWrite), stats.Skipped)

	if len(toWrite) == 0 {
		return stats, nil
	}
	if err := u.rubros.BatchPut(ctx, toWrite); err != nil {
		return stats, err
	}
	return stats, nil
}

// writeAllocations probes for existing allocations and persists the remainder
// under the force-rewrite-zeros gate.
func (u *MaterializerUseCase) writeAllocations(ctx context.Context, items []entities.Allocation, force bool) (WriteStats, error) {
	stats := WriteStats{Attempted: len(items)}
	if len(items) == 0 {
		return stats, nil
	}

	keys := make([]entities.AllocationKey, 0, len(items))
	for _, a := range items {
		keys = append(keys, a.Key())
	}
	existing, err := u.allocations.BatchGetByKeys(ctx, keys)
	if err != nil {
		return stats, err
	}

	toWrite := make([]entities.Allocation, 0, len(items))
	for _, a := range items {
		prior, found := existing[a.Key()]
		switch decideWrite(found, prior.Planned, a.Planned, force) {
		case decisionWrite:
			stats.Written++
			toWrite = append(toWrite, a)
		case decisionOverwrite:
			// Preserve any actuals reconciliation already attached.
			a.Actual = prior.Actual
			a.CreatedAt = prior.CreatedAt
			stats.Overwritten++
			toWrite = append(toWrite, a)
		default:
			stats.Skipped++
		}
	}
	log.Printf("[materializer][writer] allocations attempted=%d existing=%d to_write=%d skipped=%d force=%v",
		stats.Attempted, len(existing), len(toWrite), stats.Skipped, force)

	if len(toWrite) == 0 {
		return stats, nil
	}
	if err := u.allocations.BatchPut(ctx, toWrite); err != nil {
		return stats, err
	}
	return stats, nil
}
