package engine

import (
	"testing"

	"wireless-quote/catalog"
	"wireless-quote/core/eligibility"
	"wireless-quote/core/types"
	"wireless-quote/internal/errors"
)

func testEngine() *Engine {
	return New(catalog.Default(), nil)
}

func testConfig() types.QuoteConfig {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "essentials"
	cfg.Lines = 2
	cfg.TaxRate = 8.0
	return cfg
}

func TestNewNilCatalog(t *testing.T) {
	eng := New(nil, nil)
	if eng.Catalog() == nil {
		t.Fatal("engine should substitute an empty catalog")
	}
	totals := eng.Calculate(testConfig())
	if !totals.MonthlyTotal.IsZero() {
		t.Errorf("empty catalog should price to zero, got %s", totals.MonthlyTotal)
	}
}

func TestClassifyPromotionsSortsEligibleFirst(t *testing.T) {
	eng := testEngine()
	results := eng.ClassifyPromotions(testConfig())

	if len(results) != len(eng.Catalog().Promotions) {
		t.Fatalf("classified %d of %d promotions", len(results), len(eng.Catalog().Promotions))
	}
	rank := func(s eligibility.Status) int {
		switch s {
		case eligibility.StatusEligible:
			return 0
		case eligibility.StatusLocked:
			return 1
		default:
			return 2
		}
	}
	for i := 1; i < len(results); i++ {
		if rank(results[i-1].Status) > rank(results[i].Status) {
			t.Fatalf("results out of order at %d: %s after %s",
				i, results[i].Status, results[i-1].Status)
		}
	}
}

func TestApplyPromotionUnknownID(t *testing.T) {
	eng := testEngine()
	_, err := eng.ApplyPromotion(testConfig(), "nope")
	if err == nil {
		t.Fatal("expected error for unknown promotion")
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestSnapshotIsolatedFromCaller(t *testing.T) {
	eng := testEngine()
	cfg := testConfig()
	cfg.Devices = []types.Device{{ID: "line1", ModelID: "pixel_9a", Price: 499.99, TermMonths: 24}}

	version := eng.Snapshot(cfg)
	if version.ID == "" {
		t.Fatal("snapshot id is empty")
	}
	if version.CreatedAt.IsZero() {
		t.Fatal("snapshot has no timestamp")
	}

	cfg.Devices[0].Price = 1
	cfg.Plan = "go_plus"

	if version.Config.Devices[0].Price != 499.99 {
		t.Error("snapshot device mutated through caller's slice")
	}
	if version.Config.Plan != "essentials" {
		t.Error("snapshot plan mutated through caller's config")
	}
}

func TestSnapshotTotalsMatchCalculate(t *testing.T) {
	eng := testEngine()
	cfg := testConfig()

	version := eng.Snapshot(cfg)
	direct := eng.Calculate(cfg)

	if !version.Totals.MonthlyTotal.Equal(direct.MonthlyTotal) {
		t.Errorf("snapshot total %s != direct total %s",
			version.Totals.MonthlyTotal, direct.MonthlyTotal)
	}
}

func TestOptimizeLeavesCallerUntouched(t *testing.T) {
	eng := testEngine()
	cfg := testConfig()
	cfg.Plan = "go_plus"
	cfg.Devices = []types.Device{
		{ID: "a", ModelID: "galaxy_s25", Price: 1199.99, TermMonths: 24},
		{ID: "b", ModelID: "iphone_16", Price: 999.99, TermMonths: 24},
	}

	result := eng.Optimize(cfg)

	for _, d := range cfg.Devices {
		if d.AppliedPromoID != "" {
			t.Fatal("optimizer mutated the caller's config")
		}
	}
	if result.ChangesMade == 0 {
		t.Error("expected the flagship BOGO to attach to a two-phone quote")
	}
}
