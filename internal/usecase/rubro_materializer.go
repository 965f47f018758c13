package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"

	"presupuesto_svc/internal/domain/entities"
)

const (
	defaultHoursPerMonth = 160.0
	defaultFTECount      = 1.0
)

// buildRubros turns normalized estimates into canonical rubro records, one per
// line item, deduplicated by composite key. Warnings are diagnostics for the
// caller's result payload, not an error channel: one unmappable or unpriceable
// line item never blocks the rest of the baseline.
func (u *MaterializerUseCase) buildRubros(ctx context.Context, b entities.NormalizedBaseline) ([]entities.Rubro, []string) {
	var warnings []string
	now := u.now().UTC()
	out := make([]entities.Rubro, 0, b.EstimateCount())
	seen := make(map[entities.RubroKey]bool, b.EstimateCount())

	appendUnique := func(r entities.Rubro) {
		if seen[r.Key()] {
			warnings = append(warnings, fmt.Sprintf("duplicate rubro instance %s dropped", r.InstanceID))
			return
		}
		seen[r.Key()] = true
		out = append(out, r)
	}

	for i, est := range b.LaborEstimates {
		start, end, ok := clampMonthRange(est.StartMonth, est.EndMonth, b.DurationMonths)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("labor estimate %d (%s) starts at month %d, beyond the %d-month contract, dropped", i, est.Role, est.StartMonth, b.DurationMonths))
			continue
		}
		months := end - start + 1

		canonical, mapped := u.canonicalize(ctx, est.RubroID, "labor", est.Role)
		if !mapped {
			warnings = append(warnings, fmt.Sprintf("labor estimate %d (%s) has no canonical mapping, kept as %q", i, est.Role, canonical))
		}

		monthly, reason := deriveMonthlyLabor(est, months)
		if reason != "" {
			warnings = append(warnings, fmt.Sprintf("labor estimate %d (%s): %s", i, est.Role, reason))
		}

		total := est.TotalCost
		if total <= 0 {
			total = monthly * float64(months)
		}

		appendUnique(entities.Rubro{
			ProjectID:       b.ProjectID,
			BaselineID:      b.BaselineID,
			InstanceID:      instanceID(est.ID, "labor", est.Role, est.Level, strconv.Itoa(i)),
			LineaCodigo:     canonical,
			Nombre:          laborName(est),
			Categoria:       "labor",
			MonthlyUnitCost: monthly,
			Recurring:       true,
			StartMonth:      start,
			EndMonth:        end,
			TotalCost:       total,
			Currency:        b.Currency,
			Source:          entities.SourceBaselineMaterializer,
			CreatedAt:       now,
		})
	}

	for i, est := range b.NonLaborEstimates {
		start, end, ok := nonLaborMonthRange(est, b.DurationMonths)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("non-labor estimate %d (%s) starts at month %d, beyond the %d-month contract, dropped", i, est.Category, est.StartMonth, b.DurationMonths))
			continue
		}
		months := end - start + 1

		canonical, mapped := u.canonicalize(ctx, est.RubroID, est.Category, est.Description)
		if !mapped {
			warnings = append(warnings, fmt.Sprintf("non-labor estimate %d (%s) has no canonical mapping, kept as %q", i, est.Category, canonical))
		}
		if est.Amount <= 0 {
			warnings = append(warnings, fmt.Sprintf("non-labor estimate %d (%s) has no positive amount, materialized at 0", i, est.Category))
		}

		total := est.Amount
		if !est.OneTime {
			total = est.Amount * float64(months)
		}

		appendUnique(entities.Rubro{
			ProjectID:       b.ProjectID,
			BaselineID:      b.BaselineID,
			InstanceID:      instanceID(est.ID, "nonlabor", est.Category, est.Description, strconv.Itoa(i)),
			LineaCodigo:     canonical,
			Nombre:          nonLaborName(est),
			Categoria:       firstNonEmpty(est.Category, "gasto"),
			MonthlyUnitCost: est.Amount,
			Recurring:       !est.OneTime,
			StartMonth:      start,
			EndMonth:        end,
			TotalCost:       total,
			Currency:        b.Currency,
			Source:          entities.SourceBaselineMaterializer,
			CreatedAt:       now,
		})
	}

	log.Printf("[materializer][rubros] built baseline_id=%s rubros=%d warnings=%d", b.BaselineID, len(out), len(warnings))
	return out, warnings
}

// canonicalize resolves any identifier to a canonical code. When nothing
// matches, an explicit raw id is kept unchanged (so the record stays traceable
// to its source) and only identifier-less items get the UNMAPPED sentinel.
// Resolution failure is reported via mapped=false, never an error.
func (u *MaterializerUseCase) canonicalize(ctx context.Context, explicitID, category, description string) (code string, mapped bool) {
	if c, ok := u.resolver.Resolve(ctx, explicitID, category, description); ok {
		return c, true
	}
	if id := strings.TrimSpace(explicitID); id != "" {
		return id, false
	}
	return entities.LineaUnmapped, false
}

// deriveMonthlyLabor applies the amount-derivation priority chain: explicit
// total over the range, then the monthly figure, then hourly-rate expansion
// with defaulted hours/FTE. Reason is non-empty only when the amount is 0.
func deriveMonthlyLabor(est entities.LaborEstimate, months int) (float64, string) {
	if est.TotalCost > 0 && months > 0 {
		return est.TotalCost / float64(months), ""
	}
	if est.MonthlyCost > 0 {
		return est.MonthlyCost, ""
	}
	if est.HourlyRate > 0 {
		hours := est.HoursPerMonth
		if hours <= 0 {
			hours = defaultHoursPerMonth
		}
		fte := est.FTECount
		if fte <= 0 {
			fte = defaultFTECount
		}
		return est.HourlyRate * hours * fte * (1 + est.OnCostPct/100), ""
	}
	return 0, "no usable cost field (total, monthly or hourly), monthly amount is 0"
}

// clampMonthRange clips an estimate range to the contract span. ok=false means
// the whole range falls past the contract end; callers drop the item with a
// warning rather than emit records outside the span.
func clampMonthRange(start, end, duration int) (int, int, bool) {
	if start < 1 {
		start = 1
	}
	if duration > 0 && start > duration {
		return start, end, false
	}
	if end < start {
		end = duration
	}
	if duration > 0 && end > duration {
		end = duration
	}
	if end < start {
		end = start
	}
	return start, end, true
}

func nonLaborMonthRange(est entities.NonLaborEstimate, duration int) (int, int, bool) {
	if est.OneTime {
		m := est.StartMonth
		if m < 1 {
			m = 1
		}
		if duration > 0 && m > duration {
			return m, m, false
		}
		return m, m, true
	}
	return clampMonthRange(est.StartMonth, est.EndMonth, duration)
}

// instanceID prefers the source estimate's own id; otherwise a stable hash of
// the identifying fields plus ordinal index. Never random: reruns over
// unchanged input must reproduce the identical id set.
func instanceID(ownID string, parts ...string) string {
	if id := strings.TrimSpace(ownID); id != "" {
		return id
	}
	h := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h[:])[:12]
}

func laborName(est entities.LaborEstimate) string {
	if est.Level != "" {
		return strings.TrimSpace(est.Level + " " + est.Role)
	}
	return firstNonEmpty(est.Role, est.RubroID)
}

func nonLaborName(est entities.NonLaborEstimate) string {
	return firstNonEmpty(est.Description, est.Category, est.RubroID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
