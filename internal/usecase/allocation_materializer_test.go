package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"presupuesto_svc/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestExpandAllocations_OnePerMonthInRange(t *testing.T) {
	b := testBaseline()
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	items := []resolvedLineItem{{canonicalID: "MOD-ING", monthlyAmount: 1000, startMonth: 1, endMonth: 12, sourceID: "li-1"}}
	allocations := expandAllocations(b, items, now)
	if len(allocations) != 12 {
		t.Fatalf("expected 12 allocations, got %d", len(allocations))
	}

	first, last := allocations[0], allocations[11]
	if first.CalendarMonth != "2025-06" || first.MonthIndex != 1 {
		t.Fatalf("unexpected first allocation: %+v", first)
	}
	if last.CalendarMonth != "2026-05" || last.MonthIndex != 12 {
		t.Fatalf("unexpected last allocation: %+v", last)
	}
	for _, a := range allocations {
		if a.Planned != 1000 || a.Forecast != 1000 || a.Actual != 0 {
			t.Fatalf("forecast must start equal to planned and actual at 0: %+v", a)
		}
		if a.Source != entities.SourceBaselineMaterializer || a.LineItemID != "li-1" {
			t.Fatalf("provenance missing: %+v", a)
		}
	}
}

func TestExpandAllocations_MergesCollidingKeys(t *testing.T) {
	b := testBaseline()
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// Two line items resolving to the same canonical id share composite keys;
	// exactly one allocation per key must come out, amounts merged.
	items := []resolvedLineItem{
		{canonicalID: "MOD-ING", monthlyAmount: 1000, startMonth: 1, endMonth: 3, sourceID: "li-1"},
		{canonicalID: "MOD-ING", monthlyAmount: 500, startMonth: 2, endMonth: 4, sourceID: "li-2"},
	}
	allocations := expandAllocations(b, items, now)
	if len(allocations) != 4 {
		t.Fatalf("expected 4 merged allocations, got %d", len(allocations))
	}
	byMonth := map[int]float64{}
	for _, a := range allocations {
		byMonth[a.MonthIndex] = a.Planned
	}
	want := map[int]float64{1: 1000, 2: 1500, 3: 1500, 4: 500}
	for month, amount := range want {
		if byMonth[month] != amount {
			t.Fatalf("month %d: expected %v, got %v", month, amount, byMonth[month])
		}
	}
}

func TestExpandAllocations_RangeClampedToDuration(t *testing.T) {
	b := testBaseline()
	b.DurationMonths = 6
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	items := []resolvedLineItem{{canonicalID: "MOD-ING", monthlyAmount: 1000, startMonth: 1, endMonth: 12, sourceID: "li-1"}}
	allocations := expandAllocations(b, items, now)
	if len(allocations) != 6 {
		t.Fatalf("expected clamp to 6 allocations, got %d", len(allocations))
	}
}

// Path equivalence: the primary path (persisted rubros) and the fallback path
// (raw estimates) must emit the identical key set and canonical ids for the
// same logical line item.
func TestAllocationPaths_Equivalence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	b := testBaseline() // one labor item, MOD-ING, total 12000 over 12 months
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	rubros, _ := uc.buildRubros(context.Background(), b)
	primary := expandAllocations(b, resolveFromRubros(rubros), now)

	fallbackItems, _ := uc.resolveFromEstimates(context.Background(), b)
	fallback := expandAllocations(b, fallbackItems, now)

	if len(primary) != 12 || len(fallback) != 12 {
		t.Fatalf("expected 12 allocations on both paths, got %d/%d", len(primary), len(fallback))
	}

	keysOf := func(items []entities.Allocation) []entities.AllocationKey {
		keys := make([]entities.AllocationKey, 0, len(items))
		for _, a := range items {
			keys = append(keys, a.Key())
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].CalendarMonth < keys[j].CalendarMonth })
		return keys
	}
	pKeys, fKeys := keysOf(primary), keysOf(fallback)
	for i := range pKeys {
		if pKeys[i] != fKeys[i] {
			t.Fatalf("key divergence at %d: %+v vs %+v", i, pKeys[i], fKeys[i])
		}
		if pKeys[i].CanonicalRubroID != "MOD-ING" {
			t.Fatalf("expected canonical id MOD-ING, got %q", pKeys[i].CanonicalRubroID)
		}
	}
	for i := range primary {
		if primary[i].Planned != 1000 {
			t.Fatalf("primary path amount: expected 1000, got %v", primary[i].Planned)
		}
		if fallback[i].Planned != 1000 {
			t.Fatalf("fallback path amount: expected 1000, got %v", fallback[i].Planned)
		}
	}
}

func TestExpandAllocations_SkipsRangesBeyondContractSpan(t *testing.T) {
	b := testBaseline()
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// A persisted rubro from a pre-clamping writer may start past the contract
	// end; it must produce no allocations at all, not a stray trailing month.
	items := []resolvedLineItem{
		{canonicalID: "MOD-ING", monthlyAmount: 1000, startMonth: 1, endMonth: 12, sourceID: "li-1"},
		{canonicalID: "MOD-QA", monthlyAmount: 800, startMonth: 15, endMonth: 18, sourceID: "li-2"},
	}
	allocations := expandAllocations(b, items, now)
	if len(allocations) != 12 {
		t.Fatalf("expected 12 allocations, got %d", len(allocations))
	}
	for _, a := range allocations {
		if a.CanonicalRubroID == "MOD-QA" {
			t.Fatalf("out-of-span line item leaked an allocation: %+v", a)
		}
		if a.MonthIndex > b.DurationMonths {
			t.Fatalf("allocation outside the contract span: %+v", a)
		}
	}
}

func TestResolveFromEstimates_DropsAndWarnsLikeBuildRubros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	// The fallback path mirrors buildRubros diagnostics: out-of-span estimates
	// dropped with a warning, zero-amount non-labor items warned.
	b := testBaseline()
	b.LaborEstimates = append(b.LaborEstimates,
		entities.LaborEstimate{RubroID: "MOD-QA", Role: "QA", MonthlyCost: 800, StartMonth: 15, EndMonth: 18},
	)
	b.NonLaborEstimates = []entities.NonLaborEstimate{
		{RubroID: "GTO-LIC", Category: "Licencias", StartMonth: 1, EndMonth: 12},
	}

	items, warnings := uc.resolveFromEstimates(context.Background(), b)
	if len(items) != 2 {
		t.Fatalf("expected the in-span labor and the zero-amount non-labor, got %d", len(items))
	}
	for _, it := range items {
		if it.canonicalID == "MOD-QA" {
			t.Fatalf("out-of-span estimate must be dropped: %+v", it)
		}
	}
	rubroItems, rubroWarnings := uc.buildRubros(context.Background(), b)
	if len(rubroItems) != len(items) {
		t.Fatalf("paths disagree on surviving items: %d vs %d", len(rubroItems), len(items))
	}
	if len(warnings) != len(rubroWarnings) {
		t.Fatalf("paths disagree on diagnostics: %v vs %v", warnings, rubroWarnings)
	}
}

func TestResolveFromEstimates_UnmappedNeverThrows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(t, ctrl)

	b := testBaseline()
	b.LaborEstimates = []entities.LaborEstimate{
		{RubroID: "weird-id-9", Role: "Unknown", MonthlyCost: 10, StartMonth: 1, EndMonth: 2},
	}
	items, warnings := uc.resolveFromEstimates(context.Background(), b)
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	// Raw id kept unchanged, not replaced by the sentinel.
	if items[0].canonicalID != "weird-id-9" {
		t.Fatalf("expected raw id kept, got %q", items[0].canonicalID)
	}
	if len(warnings) == 0 {
		t.Fatalf("expected an unmapped warning")
	}
}
