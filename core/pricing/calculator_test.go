package pricing

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"wireless-quote/core/types"
)

func testCatalog() *types.Catalog {
	return &types.Catalog{
		Plans: []types.Plan{
			{ID: "duo", Name: "Duo", TieredPrices: []float64{70, 120}},
			{ID: "family", Name: "Family", TieredPrices: []float64{70, 120, 140}},
			{ID: "prepaid", Name: "Prepaid", TieredPrices: []float64{40}, TaxesIncluded: true},
		},
		Insurance: []types.InsurancePlan{
			{ID: "protect", Name: "Protect", Price: 15},
		},
		Discounts: types.DiscountSettings{
			Autopay:        5,
			InsiderPercent: 20,
			ThirdLineFree:  true,
		},
		ServicePlans: []types.ServicePlan{
			{ID: "watch_plan", DeviceCategory: types.CategoryWatch, Price: 12},
		},
		Promotions: []types.Promotion{
			{ID: "rebate_promo", Name: "Rebate Promo", Category: types.PromoDevice, Active: true, Effects: []types.Effect{
				{Type: types.EffectDeviceCreditFixed, Value: 700},
				{Type: types.EffectDeviceInstantRebate, Value: 100},
			}},
		},
	}
}

func mustEqual(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("%s = %s, want %v", label, got, want)
	}
}

// Taxes are prorated per line: each line is taxed on its marginal plan cost
// plus one unit of insurance.
func TestTaxProrationPerLine(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "duo"
	cfg.Lines = 2
	cfg.Insurance = "protect"
	cfg.TaxRate = 10

	got := Calculate(cfg, testCatalog())

	// (70+15)*0.10 + ((120-70)+15)*0.10 = 8.5 + 6.5
	mustEqual(t, "CalculatedTaxes", got.CalculatedTaxes, 15.0)
}

func TestTaxesIncludedPlanHasNoTaxes(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "prepaid"
	cfg.Lines = 1
	cfg.Insurance = "protect"
	cfg.TaxRate = 10

	got := Calculate(cfg, testCatalog())
	if !got.CalculatedTaxes.IsZero() {
		t.Errorf("CalculatedTaxes = %s, want 0", got.CalculatedTaxes)
	}
}

func TestThirdLineFreeDiscount(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "family"
	cfg.Lines = 3
	cfg.Discounts.ThirdLineFree = true

	got := Calculate(cfg, testCatalog())

	mustEqual(t, "BasePlanPrice", got.BasePlanPrice, 140)
	mustEqual(t, "ThirdLineFreeDiscount", got.ThirdLineFreeDiscount, 20)
	mustEqual(t, "FinalPlanPrice", got.FinalPlanPrice, 120)
}

func TestThirdLineFreeRequiresThreeLines(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "duo"
	cfg.Lines = 2
	cfg.Discounts.ThirdLineFree = true

	got := Calculate(cfg, testCatalog())
	if !got.ThirdLineFreeDiscount.IsZero() {
		t.Errorf("ThirdLineFreeDiscount = %s on 2 lines, want 0", got.ThirdLineFreeDiscount)
	}
}

func TestAutopayAndInsiderDiscounts(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "duo"
	cfg.Lines = 2
	cfg.Discounts.Autopay = true
	cfg.Discounts.Insider = true

	got := Calculate(cfg, testCatalog())

	mustEqual(t, "AutopayDiscount", got.AutopayDiscount, 10) // 2 lines x $5
	mustEqual(t, "InsiderDiscount", got.InsiderDiscount, 24) // 20% of $120
	mustEqual(t, "FinalPlanPrice", got.FinalPlanPrice, 86)

	if len(got.DiscountsApplied) != 2 {
		t.Errorf("DiscountsApplied = %v, want [AutoPay Insider]", got.DiscountsApplied)
	}
}

// Device payments amortize over a fixed 24-month window for the monthly
// estimate, and a trade-in exceeding the price never goes negative.
func TestMonthlyDevicePayment(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Lines = 1
	cfg.Devices = []types.Device{
		{ID: "d1", Price: 830, TradeIn: 200, TradeInType: types.TradeInManual, TermMonths: 36},
	}

	got := Calculate(cfg, testCatalog())
	mustEqual(t, "MonthlyDevicePayment", got.MonthlyDevicePayment, 26.25)

	cfg.Devices[0].TradeIn = 900
	got = Calculate(cfg, testCatalog())
	if !got.MonthlyDevicePayment.IsZero() {
		t.Errorf("MonthlyDevicePayment = %s with excess trade-in, want 0", got.MonthlyDevicePayment)
	}
}

func TestDueTodayTaxesNetDeviceCost(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Lines = 1
	cfg.TaxRate = 10
	cfg.Devices = []types.Device{
		{ID: "d1", Price: 830, TradeIn: 200, TradeInType: types.TradeInManual},
	}

	got := Calculate(cfg, testCatalog())
	mustEqual(t, "DueToday", got.DueToday, 63) // 630 * 10%
}

func TestMonthlyTotalComposition(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "duo"
	cfg.Lines = 2
	cfg.Insurance = "protect"
	cfg.TaxRate = 10
	cfg.Devices = []types.Device{
		{ID: "d1", Price: 830, TradeIn: 200, TradeInType: types.TradeInManual},
	}

	got := Calculate(cfg, testCatalog())

	// 120 plan + 26.25 devices + 30 insurance + 15 taxes
	mustEqual(t, "MonthlyTotal", got.MonthlyTotal, 191.25)
}

func TestPromoCreditAndRebateSplit(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Lines = 1
	cfg.Devices = []types.Device{
		{ID: "d1", Price: 1000, TradeIn: 800, TradeInType: types.TradeInPromo, AppliedPromoID: "rebate_promo"},
		{ID: "d2", Price: 500, TradeIn: 100, TradeInType: types.TradeInManual},
	}

	got := Calculate(cfg, testCatalog())

	mustEqual(t, "TotalTradeIn", got.TotalTradeIn, 900)
	mustEqual(t, "TradeInCredit", got.TradeInCredit, 100)
	mustEqual(t, "PromoCredit", got.PromoCredit, 700)
	mustEqual(t, "InstantRebate", got.InstantRebate, 100)

	if len(got.AppliedPromotions) != 1 {
		t.Fatalf("AppliedPromotions = %v, want 1 entry", got.AppliedPromotions)
	}
	ap := got.AppliedPromotions[0]
	if ap.PromotionID != "rebate_promo" || ap.DeviceID != "d1" || ap.Name != "Rebate Promo" {
		t.Errorf("AppliedPromotions[0] = %+v", ap)
	}
}

func TestServicePlanCostItemized(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Lines = 1
	cfg.Devices = []types.Device{
		{ID: "w1", Category: types.CategoryWatch, ServicePlanID: "watch_plan"},
	}

	got := Calculate(cfg, testCatalog())
	mustEqual(t, "ServicePlanCost", got.ServicePlanCost, 12)
}

func TestAccessoriesItemized(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Lines = 1
	cfg.Accessories = []types.Accessory{
		{ID: "a1", Price: 50, Quantity: 2, PaymentType: types.PayInFull},
		{ID: "a2", Price: 120, Quantity: 1, PaymentType: types.PayFinanced, TermMonths: 12, DownPayment: 24},
	}

	got := Calculate(cfg, testCatalog())
	mustEqual(t, "AccessoryUpfront", got.AccessoryUpfront, 124) // 100 + 24 down
	mustEqual(t, "AccessoryMonthly", got.AccessoryMonthly, 8)   // (120-24)/12
}

// Missing catalog references contribute zero rather than failing
func TestMissingReferencesAreZero(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "no_such_plan"
	cfg.Insurance = "no_such_insurance"
	cfg.Lines = 2
	cfg.TaxRate = 10

	got := Calculate(cfg, testCatalog())

	if !got.BasePlanPrice.IsZero() || !got.InsuranceCost.IsZero() || !got.MonthlyTotal.IsZero() {
		t.Errorf("missing references produced nonzero totals: %+v", got)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "family"
	cfg.Lines = 3
	cfg.Insurance = "protect"
	cfg.TaxRate = 8.875
	cfg.Discounts = types.DiscountFlags{Autopay: true, Insider: true, ThirdLineFree: true}
	cfg.Devices = []types.Device{
		{ID: "d1", Price: 999.99, TradeIn: 150, TradeInType: types.TradeInManual},
		{ID: "d2", Price: 829.99, TradeIn: 800, TradeInType: types.TradeInPromo, AppliedPromoID: "rebate_promo"},
	}

	a, err := json.Marshal(Calculate(cfg, testCatalog()))
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(Calculate(cfg, testCatalog()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("identical inputs produced different breakdowns:\n%s\n%s", a, b)
	}
}

func TestNilCatalogIsTotal(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Plan = "duo"
	cfg.Lines = 2

	got := Calculate(cfg, nil)
	if !got.MonthlyTotal.IsZero() {
		t.Errorf("nil catalog MonthlyTotal = %s, want 0", got.MonthlyTotal)
	}
}
