package usecase

import (
	"context"
	"testing"
	"time"

	"presupuesto_svc/internal/domain/entities"
	mock_interfaces "presupuesto_svc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestUseCase(t *testing.T, ctrl *gomock.Controller) (*MaterializerUseCase, *mock_interfaces.MockIBaselineRepository, *mock_interfaces.MockIRubroRepository, *mock_interfaces.MockIAllocationRepository) {
	t.Helper()
	baselines := mock_interfaces.NewMockIBaselineRepository(ctrl)
	rubros := mock_interfaces.NewMockIRubroRepository(ctrl)
	allocations := mock_interfaces.NewMockIAllocationRepository(ctrl)
	taxonomy := mock_interfaces.NewMockITaxonomyRepository(ctrl)
	taxonomy.EXPECT().ScanActive(gomock.Any()).Return(nil, nil).AnyTimes()

	uc := NewMaterializerUseCase(baselines, rubros, allocations, NewTaxonomyResolver(taxonomy))
	uc.now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	return uc, baselines, rubros, allocations
}

func testBaseline() entities.NormalizedBaseline {
	return entities.NormalizedBaseline{
		BaselineID:     "bl-001",
		ProjectID:      "prj-9",
		StartDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 12,
		Currency:       "USD",
		LaborEstimates: []entities.LaborEstimate{
			{RubroID: "MOD-ING", Role: "Engineer", TotalCost: 12000, StartMonth: 1, EndMonth: 12},
		},
		NonLaborEstimates: []entities.NonLaborEstimate{},
	}
}

func TestBuildRubros_DeterministicInstanceIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	b := testBaseline()
	first, _ := uc.buildRubros(context.Background(), b)
	second, _ := uc.buildRubros(context.Background(), b)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected 1 rubro per run, got %d/%d", len(first), len(second))
	}
	if first[0].InstanceID == "" || first[0].InstanceID != second[0].InstanceID {
		t.Fatalf("instance ids must be stable across runs: %q vs %q", first[0].InstanceID, second[0].InstanceID)
	}
}

func TestBuildRubros_OwnIDWinsOverHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	b := testBaseline()
	b.LaborEstimates[0].ID = "li-42"
	items, _ := uc.buildRubros(context.Background(), b)
	if items[0].InstanceID != "li-42" {
		t.Fatalf("expected estimate id as instance id, got %q", items[0].InstanceID)
	}
}

func TestBuildRubros_AmountDerivationPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	// Explicit total over 18 months beats the hourly-rate derivation.
	b := testBaseline()
	b.DurationMonths = 18
	b.LaborEstimates = []entities.LaborEstimate{
		{RubroID: "MOD-ING", Role: "Engineer", TotalCost: 180000, HourlyRate: 50, StartMonth: 1, EndMonth: 18},
	}
	items, _ := uc.buildRubros(context.Background(), b)
	if items[0].MonthlyUnitCost != 10000 {
		t.Fatalf("expected total/duration = 10000, got %v", items[0].MonthlyUnitCost)
	}

	// Monthly beats hourly.
	b.LaborEstimates = []entities.LaborEstimate{
		{RubroID: "MOD-ING", Role: "Engineer", MonthlyCost: 7000, HourlyRate: 50, StartMonth: 1, EndMonth: 18},
	}
	items, _ = uc.buildRubros(context.Background(), b)
	if items[0].MonthlyUnitCost != 7000 {
		t.Fatalf("expected monthly 7000, got %v", items[0].MonthlyUnitCost)
	}

	// Hourly with defaulted hours (160) and FTE (1), on-cost applied.
	b.LaborEstimates = []entities.LaborEstimate{
		{RubroID: "MOD-ING", Role: "Engineer", HourlyRate: 50, OnCostPct: 10, StartMonth: 1, EndMonth: 18},
	}
	items, _ = uc.buildRubros(context.Background(), b)
	if items[0].MonthlyUnitCost != 50*160*1.1 {
		t.Fatalf("expected hourly derivation 8800, got %v", items[0].MonthlyUnitCost)
	}

	// Nothing usable: amount 0 plus a warning, never an error.
	b.LaborEstimates = []entities.LaborEstimate{
		{RubroID: "MOD-ING", Role: "Engineer", StartMonth: 1, EndMonth: 18},
	}
	items, warnings := uc.buildRubros(context.Background(), b)
	if items[0].MonthlyUnitCost != 0 {
		t.Fatalf("expected 0 monthly, got %v", items[0].MonthlyUnitCost)
	}
	if len(warnings) == 0 {
		t.Fatalf("expected a derivation warning")
	}
}

func TestBuildRubros_UnmappedKeepsRawIDOrSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	b := testBaseline()
	b.LaborEstimates = []entities.LaborEstimate{
		{RubroID: "legacy-xyz", Role: "Mystery Role", MonthlyCost: 100, StartMonth: 1, EndMonth: 3},
		{Role: "", Level: "", MonthlyCost: 100, StartMonth: 1, EndMonth: 3},
	}
	items, warnings := uc.buildRubros(context.Background(), b)
	if items[0].LineaCodigo != "legacy-xyz" {
		t.Fatalf("explicit raw id must be kept unchanged, got %q", items[0].LineaCodigo)
	}
	if items[1].LineaCodigo != entities.LineaUnmapped {
		t.Fatalf("identifier-less item must get the sentinel, got %q", items[1].LineaCodigo)
	}
	if len(warnings) < 2 {
		t.Fatalf("expected mapping warnings, got %v", warnings)
	}
}

func TestBuildRubros_DeduplicatesByCompositeKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	b := testBaseline()
	dup := b.LaborEstimates[0]
	dup.ID = "li-1"
	b.LaborEstimates = []entities.LaborEstimate{dup, dup}
	items, warnings := uc.buildRubros(context.Background(), b)
	if len(items) != 1 {
		t.Fatalf("expected dedup to 1 rubro, got %d", len(items))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected a duplicate warning, got %v", warnings)
	}
}

func TestBuildRubros_DropsEstimatesBeyondContractSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	b := testBaseline()
	b.LaborEstimates = append(b.LaborEstimates,
		entities.LaborEstimate{RubroID: "MOD-QA", Role: "QA", MonthlyCost: 800, StartMonth: 15, EndMonth: 18},
	)
	b.NonLaborEstimates = []entities.NonLaborEstimate{
		{RubroID: "GTO-LIC", Category: "Licencias", Amount: 300, OneTime: true, StartMonth: 15},
	}

	items, warnings := uc.buildRubros(context.Background(), b)
	if len(items) != 1 {
		t.Fatalf("estimates past the 12-month contract must be dropped, got %d rubros", len(items))
	}
	if items[0].LineaCodigo != "MOD-ING" {
		t.Fatalf("the in-span estimate should survive, got %+v", items[0])
	}
	if len(warnings) != 2 {
		t.Fatalf("expected one drop warning per out-of-span estimate, got %v", warnings)
	}
}

func TestBuildRubros_NonLabor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	b := testBaseline()
	b.LaborEstimates = nil
	b.NonLaborEstimates = []entities.NonLaborEstimate{
		{RubroID: "GTO-CLOUD", Category: "hosting", Amount: 500, StartMonth: 1, EndMonth: 12},
		{Category: "Licencias", Description: "IDE", Amount: 2400, OneTime: true, StartMonth: 3},
	}
	items, _ := uc.buildRubros(context.Background(), b)
	if len(items) != 2 {
		t.Fatalf("expected 2 rubros, got %d", len(items))
	}

	recurring := items[0]
	if recurring.TotalCost != 6000 || !recurring.Recurring {
		t.Fatalf("recurring total should be amount*months: %+v", recurring)
	}

	oneTime := items[1]
	if oneTime.TotalCost != 2400 || oneTime.Recurring {
		t.Fatalf("one-time total should be the amount itself: %+v", oneTime)
	}
	if oneTime.StartMonth != 3 || oneTime.EndMonth != 3 {
		t.Fatalf("one-time range must collapse to its start month: %+v", oneTime)
	}
	// "Licencias" resolves through the legacy alias table.
	if oneTime.LineaCodigo != "GTO-LIC" {
		t.Fatalf("expected GTO-LIC via category alias, got %q", oneTime.LineaCodigo)
	}
}
