package usecase

import (
	"errors"
	"testing"
)

func flatBaseline() map[string]interface{} {
	return map[string]interface{}{
		"baseline_id":     "bl-001",
		"project_id":      "PROJECT#prj-9",
		"start_date":      "2025-06-01",
		"duration_months": float64(12),
		"currency":        "USD",
		"labor_estimates": []interface{}{
			map[string]interface{}{
				"rubro_id":    "MOD-ING",
				"role":        "Engineer",
				"total_cost":  float64(12000),
				"start_month": float64(1),
				"end_month":   float64(12),
			},
		},
	}
}

func TestNormalizeBaseline_Flat(t *testing.T) {
	b, _, err := NormalizeBaseline(flatBaseline())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.BaselineID != "bl-001" || b.ProjectID != "prj-9" {
		t.Fatalf("unexpected ids: %+v", b)
	}
	if b.DurationMonths != 12 || b.Currency != "USD" {
		t.Fatalf("unexpected fields: %+v", b)
	}
	if len(b.LaborEstimates) != 1 || b.LaborEstimates[0].TotalCost != 12000 {
		t.Fatalf("labor estimates not recovered: %+v", b.LaborEstimates)
	}
	if b.StartDate.Format("2006-01-02") != "2025-06-01" {
		t.Fatalf("start date not parsed: %v", b.StartDate)
	}
}

func TestNormalizeBaseline_SingleAndDoubleWrapped(t *testing.T) {
	wrapped := map[string]interface{}{"payload": flatBaseline()}
	b, _, err := NormalizeBaseline(wrapped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.LaborEstimates) != 1 {
		t.Fatalf("single-wrapped estimates not found: %+v", b)
	}

	inner := flatBaseline()
	doubleWrapped := map[string]interface{}{
		"payload": map[string]interface{}{
			"id":         "envelope",
			"project_id": "PROJECT#prj-9",
			"payload":    inner,
		},
	}
	b, _, err = NormalizeBaseline(doubleWrapped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.LaborEstimates) != 1 || b.BaselineID != "bl-001" {
		t.Fatalf("double-wrapped estimates not found: %+v", b)
	}
}

func TestNormalizeBaseline_DynamoTypedEnvelope(t *testing.T) {
	raw := map[string]interface{}{
		"payload": map[string]interface{}{
			"M": map[string]interface{}{
				"baseline_id": map[string]interface{}{"S": "bl-7"},
				"project_id":  map[string]interface{}{"S": "prj-7"},
				"labor_estimates": map[string]interface{}{
					"L": []interface{}{
						map[string]interface{}{
							"M": map[string]interface{}{
								"role":       map[string]interface{}{"S": "Engineer"},
								"total_cost": map[string]interface{}{"N": "6000"},
							},
						},
					},
				},
			},
		},
	}
	b, _, err := NormalizeBaseline(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.BaselineID != "bl-7" || b.ProjectID != "prj-7" {
		t.Fatalf("envelope ids not recovered: %+v", b)
	}
	if len(b.LaborEstimates) != 1 || b.LaborEstimates[0].TotalCost != 6000 {
		t.Fatalf("envelope estimates not recovered: %+v", b.LaborEstimates)
	}
}

func TestNormalizeBaseline_ScalarsAboveEstimates(t *testing.T) {
	// Historical records keep the ids and dates on the outer record while the
	// estimates sit one payload level deeper.
	raw := map[string]interface{}{
		"id":              "bl-outer",
		"project_id":      "prj-outer",
		"start_date":      "2025-03-01",
		"duration_months": float64(6),
		"currency":        "USD",
		"payload": map[string]interface{}{
			"labor_estimates": []interface{}{
				map[string]interface{}{
					"role":         "Engineer",
					"monthly_cost": float64(2000),
					"start_month":  float64(1),
					"end_month":    float64(6),
				},
			},
		},
	}
	b, _, err := NormalizeBaseline(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.BaselineID != "bl-outer" || b.ProjectID != "prj-outer" {
		t.Fatalf("outer scalars not recovered: %+v", b)
	}
	if b.DurationMonths != 6 || b.StartDate.Format("2006-01-02") != "2025-03-01" {
		t.Fatalf("outer date fields not recovered: %+v", b)
	}
	if len(b.LaborEstimates) != 1 || b.LaborEstimates[0].MonthlyCost != 2000 {
		t.Fatalf("inner estimates not recovered: %+v", b.LaborEstimates)
	}

	// The estimates level still wins when both carry the same field.
	inner, _ := raw["payload"].(map[string]interface{})
	inner["project_id"] = "prj-inner"
	b, _, err = NormalizeBaseline(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ProjectID != "prj-inner" {
		t.Fatalf("estimates level must take precedence, got %q", b.ProjectID)
	}
}

func TestNormalizeBaseline_MissingProjectID(t *testing.T) {
	raw := flatBaseline()
	delete(raw, "project_id")
	_, _, err := NormalizeBaseline(raw)
	if !errors.Is(err, ErrMissingProjectID) {
		t.Fatalf("expected ErrMissingProjectID, got %v", err)
	}
}

func TestNormalizeBaseline_BaselineIDSubstitutedForProjectID(t *testing.T) {
	raw := flatBaseline()
	raw["project_id"] = "BASELINE#bl-001"
	_, _, err := NormalizeBaseline(raw)
	if !errors.Is(err, ErrBaselineIDAsProjectID) {
		t.Fatalf("expected ErrBaselineIDAsProjectID, got %v", err)
	}
}

func TestNormalizeBaseline_FallbacksAreWarnedNotFatal(t *testing.T) {
	raw := flatBaseline()
	delete(raw, "start_date")
	delete(raw, "duration_months")
	delete(raw, "currency")

	b, warnings, err := NormalizeBaseline(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.StartDate.IsZero() {
		t.Fatalf("expected zero start date, got %v", b.StartDate)
	}
	// Duration inferred from the widest estimate range.
	if b.DurationMonths != 12 {
		t.Fatalf("expected inferred duration 12, got %d", b.DurationMonths)
	}
	if b.Currency != "USD" {
		t.Fatalf("expected defaulted currency, got %q", b.Currency)
	}
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", warnings)
	}
}

func TestNormalizeBaseline_SpanishAliases(t *testing.T) {
	raw := map[string]interface{}{
		"id":             "bl-es",
		"proyecto_id":    "PRY#prj-es",
		"fecha_inicio":   "2025-01-01",
		"duracion_meses": "6",
		"moneda":         "EUR",
		"estimaciones_gasto": []interface{}{
			map[string]interface{}{
				"categoria": "Licencias",
				"concepto":  "IDE",
				"importe":   "1.200,50",
				"unico":     "si",
			},
		},
	}
	b, _, err := NormalizeBaseline(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ProjectID != "prj-es" || b.DurationMonths != 6 || b.Currency != "EUR" {
		t.Fatalf("aliases not honored: %+v", b)
	}
	if len(b.NonLaborEstimates) != 1 {
		t.Fatalf("non-labor estimates not recovered: %+v", b)
	}
	e := b.NonLaborEstimates[0]
	if e.Amount != 1200.50 || !e.OneTime || e.Category != "Licencias" {
		t.Fatalf("unexpected non-labor estimate: %+v", e)
	}
}

func TestResolveProjectID(t *testing.T) {
	if got, err := resolveProjectID(" PROJ#abc "); err != nil || got != "abc" {
		t.Fatalf("expected abc, got (%q, %v)", got, err)
	}
	if _, err := resolveProjectID("BL-123"); !errors.Is(err, ErrBaselineIDAsProjectID) {
		t.Fatalf("expected ErrBaselineIDAsProjectID, got %v", err)
	}
	if _, err := resolveProjectID(""); !errors.Is(err, ErrMissingProjectID) {
		t.Fatalf("expected ErrMissingProjectID, got %v", err)
	}
}
