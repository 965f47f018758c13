package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"presupuesto_svc/internal/domain/entities"
)

// resolvedLineItem is the shared intermediate both allocation paths produce.
// The expansion below is the only code that turns line items into allocation
// records, so the primary (persisted rubros) and fallback (raw estimates)
// paths cannot drift apart on composite keys or canonical ids.
type resolvedLineItem struct {
	canonicalID   string
	monthlyAmount float64
	startMonth    int
	endMonth      int
	sourceID      string
}

func resolveFromRubros(rubros []entities.Rubro) []resolvedLineItem {
	out := make([]resolvedLineItem, 0, len(rubros))
	for _, r := range rubros {
		out = append(out, resolvedLineItem{
			canonicalID:   r.LineaCodigo,
			monthlyAmount: r.MonthlyUnitCost,
			startMonth:    r.StartMonth,
			endMonth:      r.EndMonth,
			sourceID:      r.InstanceID,
		})
	}
	return out
}

// resolveFromEstimates mirrors buildRubros' canonicalization and amount
// derivation exactly; any rule change must land in both or path equivalence
// breaks.
func (u *MaterializerUseCase) resolveFromEstimates(ctx context.Context, b entities.NormalizedBaseline) ([]resolvedLineItem, []string) {
	var warnings []string
	out := make([]resolvedLineItem, 0, b.EstimateCount())

	for i, est := range b.LaborEstimates {
		start, end, ok := clampMonthRange(est.StartMonth, est.EndMonth, b.DurationMonths)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("labor estimate %d (%s) starts at month %d, beyond the %d-month contract, dropped", i, est.Role, est.StartMonth, b.DurationMonths))
			continue
		}
		canonical, mapped := u.canonicalize(ctx, est.RubroID, "labor", est.Role)
		if !mapped {
			warnings = append(warnings, fmt.Sprintf("labor estimate %d (%s) has no canonical mapping, kept as %q", i, est.Role, canonical))
		}
		monthly, reason := deriveMonthlyLabor(est, end-start+1)
		if reason != "" {
			warnings = append(warnings, fmt.Sprintf("labor estimate %d (%s): %s", i, est.Role, reason))
		}
		out = append(out, resolvedLineItem{
			canonicalID:   canonical,
			monthlyAmount: monthly,
			startMonth:    start,
			endMonth:      end,
			sourceID:      instanceID(est.ID, "labor", est.Role, est.Level, strconv.Itoa(i)),
		})
	}

	for i, est := range b.NonLaborEstimates {
		start, end, ok := nonLaborMonthRange(est, b.DurationMonths)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("non-labor estimate %d (%s) starts at month %d, beyond the %d-month contract, dropped", i, est.Category, est.StartMonth, b.DurationMonths))
			continue
		}
		canonical, mapped := u.canonicalize(ctx, est.RubroID, est.Category, est.Description)
		if !mapped {
			warnings = append(warnings, fmt.Sprintf("non-labor estimate %d (%s) has no canonical mapping, kept as %q", i, est.Category, canonical))
		}
		if est.Amount <= 0 {
			warnings = append(warnings, fmt.Sprintf("non-labor estimate %d (%s) has no positive amount, materialized at 0", i, est.Category))
		}
		out = append(out, resolvedLineItem{
			canonicalID:   canonical,
			monthlyAmount: est.Amount,
			startMonth:    start,
			endMonth:      end,
			sourceID:      instanceID(est.ID, "nonlabor", est.Category, est.Description, strconv.Itoa(i)),
		})
	}

	return out, warnings
}

// expandAllocations emits one allocation per line item per contract month.
// Line items resolving to the same canonical id and month share one composite
// key, so their planned amounts are merged; provenance keeps the first source.
func expandAllocations(b entities.NormalizedBaseline, items []resolvedLineItem, now time.Time) []entities.Allocation {
	out := make([]entities.Allocation, 0, len(items)*4)
	index := make(map[entities.AllocationKey]int, len(items)*4)

	for _, item := range items {
		start, end, ok := clampMonthRange(item.startMonth, item.endMonth, b.DurationMonths)
		if !ok {
			continue
		}
		for month := start; month <= end; month++ {
			a := entities.Allocation{
				ProjectID:        b.ProjectID,
				BaselineID:       b.BaselineID,
				MonthIndex:       month,
				CalendarMonth:    calendarMonth(b.StartDate, month),
				CanonicalRubroID: item.canonicalID,
				Planned:          item.monthlyAmount,
				Forecast:         item.monthlyAmount,
				Actual:           0,
				Currency:         b.Currency,
				Source:           entities.SourceBaselineMaterializer,
				LineItemID:       item.sourceID,
				CreatedAt:        now,
				UpdatedAt:        now,
			}
			if at, ok := index[a.Key()]; ok {
				out[at].Planned += a.Planned
				out[at].Forecast += a.Forecast
				continue
			}
			index[a.Key()] = len(out)
			out = append(out, a)
		}
	}
	return out
}
