package usecase

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"presupuesto_svc/internal/domain/entities"
)

var (
	ErrMissingProjectID      = errors.New("baseline has no resolvable project id")
	ErrBaselineIDAsProjectID = errors.New("baseline id supplied where a project id is required")
)

// Key prefixes stripped from ids. A baseline-shaped id left in the project
// slot is an upstream wiring bug and must fail loudly, never be persisted.
var (
	projectIDPrefixes  = []string{"PROJECT#", "PROJ#", "PRY#"}
	baselineIDMarkers  = []string{"BASELINE#", "BL-"}
	dynamoEnvelopeTags = map[string]bool{
		"M": true, "L": true, "S": true, "N": true, "B": true,
		"BOOL": true, "NULL": true, "SS": true, "NS": true, "BS": true,
	}
)

// NormalizeBaseline recovers the canonical baseline shape from whatever an
// upstream writer stored: a flat record, a record wrapped in a payload map,
// a double-wrapped payload, or any of those still in DynamoDB typed-envelope
// encoding. Returned warnings are diagnostics, not an error channel.
func NormalizeBaseline(raw map[string]interface{}) (entities.NormalizedBaseline, []string, error) {
	var warnings []string

	candidate := unwrapEnvelopeMap(raw)

	// Historical writers nested the real record up to two payload levels deep.
	levels := []map[string]interface{}{candidate}
	for d := 0; d < 2; d++ {
		next, ok := asMap(levels[len(levels)-1]["payload"])
		if !ok {
			break
		}
		levels = append(levels, unwrapEnvelopeMap(next))
	}
	level := levels[0]
	depth := 0
	for d, probe := range levels {
		if hasEstimates(probe) {
			level, depth = probe, d
			break
		}
	}
	log.Printf("[baseline][normalizer] candidate selected depth=%d keys=%d", depth, len(level))

	// Scalar fields may sit above the estimates (ids at the outer record,
	// estimates one payload deeper); prefer the estimates level, then walk
	// outward.
	scalars := []map[string]interface{}{level}
	for d := depth - 1; d >= 0; d-- {
		scalars = append(scalars, levels[d])
	}

	projectID, err := resolveProjectID(pickStringAcross(scalars, "projectId", "project_id", "proyecto_id", "id_proyecto"))
	if err != nil {
		return entities.NormalizedBaseline{}, warnings, err
	}

	b := entities.NormalizedBaseline{
		BaselineID:        pickStringAcross(scalars, "baselineId", "baseline_id", "id"),
		ProjectID:         projectID,
		Currency:          pickStringAcross(scalars, "currency", "moneda"),
		LaborEstimates:    []entities.LaborEstimate{},
		NonLaborEstimates: []entities.NonLaborEstimate{},
	}
	if b.Currency == "" {
		b.Currency = "USD"
		warnings = append(warnings, "currency missing, defaulted to USD")
	}

	if startRaw := pickStringAcross(scalars, "startDate", "start_date", "fecha_inicio"); startRaw != "" {
		if t, ok := parseDate(startRaw); ok {
			b.StartDate = t
		} else {
			warnings = append(warnings, fmt.Sprintf("unparseable start date %q, month alignment will fall back to now", startRaw))
		}
	} else {
		warnings = append(warnings, "start date missing, month alignment will fall back to now")
	}

	for _, item := range pickList(level, "laborEstimates", "labor_estimates", "labor", "estimaciones_mod") {
		if m, ok := asMap(item); ok {
			b.LaborEstimates = append(b.LaborEstimates, parseLaborEstimate(unwrapEnvelopeMap(m)))
		}
	}
	for _, item := range pickList(level, "nonLaborEstimates", "non_labor_estimates", "nonLabor", "estimaciones_gasto") {
		if m, ok := asMap(item); ok {
			b.NonLaborEstimates = append(b.NonLaborEstimates, parseNonLaborEstimate(unwrapEnvelopeMap(m)))
		}
	}

	if d, ok := pickDuration(scalars); ok {
		b.DurationMonths = d
	} else {
		b.DurationMonths = inferDuration(b)
		warnings = append(warnings, fmt.Sprintf("duration missing/invalid, inferred %d months from estimate ranges", b.DurationMonths))
	}

	log.Printf("[baseline][normalizer] normalized baseline_id=%s project_id=%s labor=%d non_labor=%d duration=%d start=%q",
		b.BaselineID, b.ProjectID, len(b.LaborEstimates), len(b.NonLaborEstimates), b.DurationMonths, b.StartDate.Format("2006-01-02"))
	return b, warnings, nil
}

func resolveProjectID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrMissingProjectID
	}
	for _, prefix := range projectIDPrefixes {
		id = strings.TrimPrefix(id, prefix)
	}
	for _, marker := range baselineIDMarkers {
		if strings.HasPrefix(id, marker) {
			return "", fmt.Errorf("%w: %q", ErrBaselineIDAsProjectID, id)
		}
	}
	return id, nil
}

func parseLaborEstimate(m map[string]interface{}) entities.LaborEstimate {
	e := entities.LaborEstimate{
		ID:      pickString(m, "id", "line_item_id", "lineItemId"),
		RubroID: pickString(m, "rubroId", "rubro_id", "linea_codigo", "lineaCodigo"),
		Role:    pickString(m, "role", "rol", "role_name", "perfil"),
		Level:   pickString(m, "level", "nivel", "seniority"),
	}
	e.TotalCost, _ = parseAmount(pickValue(m, "total_cost", "totalCost", "costo_total"))
	e.MonthlyCost, _ = parseAmount(pickValue(m, "monthly_cost", "monthlyCost", "costo_mensual"))
	e.HourlyRate, _ = parseAmount(pickValue(m, "hourly_rate", "hourlyRate", "tarifa_hora"))
	e.HoursPerMonth, _ = parseAmount(pickValue(m, "hours_per_month", "hoursPerMonth", "horas_mes"))
	e.FTECount, _ = parseAmount(pickValue(m, "fte", "fte_count", "fteCount"))
	e.OnCostPct, _ = parseAmount(pickValue(m, "on_cost_pct", "onCostPct", "cargas_pct"))
	e.StartMonth, _ = parseMonthIndex(pickValue(m, "start_month", "startMonth", "mes_inicio"))
	e.EndMonth, _ = parseMonthIndex(pickValue(m, "end_month", "endMonth", "mes_fin"))
	return e
}

func parseNonLaborEstimate(m map[string]interface{}) entities.NonLaborEstimate {
	e := entities.NonLaborEstimate{
		ID:          pickString(m, "id", "line_item_id", "lineItemId"),
		RubroID:     pickString(m, "rubroId", "rubro_id", "linea_codigo", "lineaCodigo"),
		Category:    pickString(m, "category", "categoria"),
		Description: pickString(m, "description", "descripcion", "concepto"),
		OneTime:     parseBool(pickValue(m, "one_time", "oneTime", "unico")),
	}
	e.Amount, _ = parseAmount(pickValue(m, "amount", "monto", "importe"))
	e.StartMonth, _ = parseMonthIndex(pickValue(m, "start_month", "startMonth", "mes_inicio"))
	e.EndMonth, _ = parseMonthIndex(pickValue(m, "end_month", "endMonth", "mes_fin"))
	return e
}

// inferDuration falls back to the widest estimate range, then a 12-month
// default, when the baseline record carries no usable duration.
func inferDuration(b entities.NormalizedBaseline) int {
	max := 0
	for _, e := range b.LaborEstimates {
		if e.EndMonth > max {
			max = e.EndMonth
		}
	}
	for _, e := range b.NonLaborEstimates {
		if e.EndMonth > max {
			max = e.EndMonth
		}
		if e.OneTime && e.StartMonth > max {
			max = e.StartMonth
		}
	}
	if max > 0 {
		return max
	}
	return 12
}

func hasEstimates(m map[string]interface{}) bool {
	return len(pickList(m, "laborEstimates", "labor_estimates", "labor", "estimaciones_mod")) > 0 ||
		len(pickList(m, "nonLaborEstimates", "non_labor_estimates", "nonLabor", "estimaciones_gasto")) > 0
}

// unwrapEnvelope decodes DynamoDB typed-envelope encoding ({"M": {...}},
// {"S": "x"}, ...) left behind by writers that stored raw wire items.
func unwrapEnvelope(v interface{}) interface{} {
	m, ok := asMap(v)
	if !ok {
		if l, ok := v.([]interface{}); ok {
			out := make([]interface{}, len(l))
			for i, item := range l {
				out[i] = unwrapEnvelope(item)
			}
			return out
		}
		return v
	}
	if len(m) == 1 {
		for tag, inner := range m {
			if dynamoEnvelopeTags[tag] {
				return unwrapEnvelope(inner)
			}
		}
	}
	out := make(map[string]interface{}, len(m))
	for k, inner := range m {
		out[k] = unwrapEnvelope(inner)
	}
	return out
}

func unwrapEnvelopeMap(m map[string]interface{}) map[string]interface{} {
	if out, ok := asMap(unwrapEnvelope(m)); ok {
		return out
	}
	return m
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func pickValue(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func pickString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func pickStringAcross(levels []map[string]interface{}, keys ...string) string {
	for _, m := range levels {
		if s := pickString(m, keys...); s != "" {
			return s
		}
	}
	return ""
}

func pickDuration(levels []map[string]interface{}) (int, bool) {
	for _, m := range levels {
		for _, k := range []string{"durationMonths", "duration_months", "duracion_meses"} {
			if d, ok := parseMonthIndex(m[k]); ok {
				return d, true
			}
		}
	}
	return 0, false
}

func pickList(m map[string]interface{}, keys ...string) []interface{} {
	for _, k := range keys {
		if l, ok := m[k].([]interface{}); ok && len(l) > 0 {
			return l
		}
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "2006-01", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
