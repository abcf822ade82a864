package optimize

import (
	"testing"

	"wireless-quote/core/types"
)

func bogoPromo(id string, buy int, credit float64) types.Promotion {
	return types.Promotion{
		ID:       id,
		Category: types.PromoDevice,
		Active:   true,
		Bogo:     &types.BogoConfig{BuyQuantity: buy},
		Effects: []types.Effect{
			{Type: types.EffectDeviceCreditFixed, Value: credit},
		},
	}
}

func singlePromo(id string, credit float64) types.Promotion {
	return types.Promotion{
		ID:       id,
		Category: types.PromoDevice,
		Active:   true,
		Effects: []types.Effect{
			{Type: types.EffectDeviceCreditFixed, Value: credit},
		},
	}
}

func threeDeviceConfig() types.QuoteConfig {
	cfg := types.NewQuoteConfig()
	cfg.Lines = 3
	cfg.Devices = []types.Device{
		{ID: "expensive", Price: 1200, TradeInType: types.TradeInManual},
		{ID: "middle", Price: 900, TradeInType: types.TradeInManual},
		{ID: "cheap", Price: 600, TradeInType: types.TradeInManual},
	}
	return cfg
}

// The cheapest device of a matched pair gets the credit; the most expensive
// is consumed as its companion; the unpaired device falls through to the
// single-promotion pass.
func TestBogoMatchesCheapestOfPair(t *testing.T) {
	promos := []types.Promotion{bogoPromo("bogo800", 2, 800)}

	got := Optimize(threeDeviceConfig(), promos, nil)

	var withPromo []string
	for _, d := range got.Config.Devices {
		if d.HasPromo() {
			withPromo = append(withPromo, d.ID)
		}
	}
	if len(withPromo) != 1 || withPromo[0] != "cheap" {
		t.Fatalf("devices with promo = %v, want [cheap]", withPromo)
	}

	for _, d := range got.Config.Devices {
		if d.ID != "cheap" {
			continue
		}
		if d.AppliedPromoID != "bogo800" {
			t.Errorf("AppliedPromoID = %q, want bogo800", d.AppliedPromoID)
		}
		if d.TradeInType != types.TradeInPromo {
			t.Errorf("TradeInType = %q, want %q", d.TradeInType, types.TradeInPromo)
		}
		if d.TradeIn != 800 {
			t.Errorf("TradeIn = %v, want 800", d.TradeIn)
		}
	}
	if got.ChangesMade != 1 {
		t.Errorf("ChangesMade = %d, want 1", got.ChangesMade)
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	promos := []types.Promotion{
		bogoPromo("bogo700", 2, 700),
		singlePromo("single300", 300),
	}

	first := Optimize(threeDeviceConfig(), promos, nil)
	if first.ChangesMade == 0 {
		t.Fatal("first run made no changes")
	}

	second := Optimize(first.Config, promos, nil)
	if second.ChangesMade != 0 {
		t.Errorf("second run ChangesMade = %d, want 0", second.ChangesMade)
	}
}

func TestOptimizeDoesNotMutateCaller(t *testing.T) {
	cfg := threeDeviceConfig()
	promos := []types.Promotion{bogoPromo("bogo800", 2, 800)}

	_ = Optimize(cfg, promos, nil)

	for _, d := range cfg.Devices {
		if d.HasPromo() || d.TradeInType != types.TradeInManual {
			t.Errorf("caller device %s was mutated: %+v", d.ID, d)
		}
	}
}

func TestUnpairedDeviceGetsBestSinglePromo(t *testing.T) {
	promos := []types.Promotion{
		bogoPromo("bogo800", 2, 800),
		singlePromo("small", 150),
		singlePromo("large", 450),
	}

	got := Optimize(threeDeviceConfig(), promos, nil)

	for _, d := range got.Config.Devices {
		if d.ID != "middle" {
			continue
		}
		if d.AppliedPromoID != "large" {
			t.Errorf("unpaired device promo = %q, want large", d.AppliedPromoID)
		}
		if d.TradeIn != 450 {
			t.Errorf("unpaired device TradeIn = %v, want 450", d.TradeIn)
		}
	}
	if got.ChangesMade != 2 {
		t.Errorf("ChangesMade = %d, want 2", got.ChangesMade)
	}
}

func TestSinglePromoMustBeatManualTradeIn(t *testing.T) {
	cfg := types.NewQuoteConfig()
	cfg.Devices = []types.Device{
		{ID: "d1", Price: 1000, TradeIn: 500, TradeInType: types.TradeInManual},
	}
	promos := []types.Promotion{singlePromo("weak", 400)}

	got := Optimize(cfg, promos, nil)

	dev := got.Config.Devices[0]
	if dev.HasPromo() {
		t.Errorf("promotion worth less than manual trade-in was attached: %+v", dev)
	}
	if got.ChangesMade != 0 {
		t.Errorf("ChangesMade = %d, want 0", got.ChangesMade)
	}
}

func TestTradeInRequirements(t *testing.T) {
	required := singlePromo("needs_trade", 900)
	required.DeviceRequirements = &types.DeviceRequirements{TradeIn: types.TradeInRequired}
	noTrade := singlePromo("no_trade", 300)
	noTrade.DeviceRequirements = &types.DeviceRequirements{TradeIn: types.TradeInNotAllowed}

	cfg := types.NewQuoteConfig()
	cfg.Devices = []types.Device{
		{ID: "with_trade", Price: 1000, TradeIn: 200, TradeInType: types.TradeInManual},
		{ID: "without_trade", Price: 1000, TradeInType: types.TradeInManual},
	}

	got := Optimize(cfg, []types.Promotion{required, noTrade}, nil)

	for _, d := range got.Config.Devices {
		switch d.ID {
		case "with_trade":
			if d.AppliedPromoID != "needs_trade" {
				t.Errorf("device with trade-in got %q, want needs_trade", d.AppliedPromoID)
			}
		case "without_trade":
			if d.AppliedPromoID != "no_trade" {
				t.Errorf("device without trade-in got %q, want no_trade", d.AppliedPromoID)
			}
		}
	}
}

func TestBogoModelAllowlist(t *testing.T) {
	models := []types.DeviceModel{
		{ID: "flagship_a", Tags: []string{"flagship"}},
		{ID: "budget_b", Tags: []string{"budget"}},
	}
	promo := bogoPromo("flagship_bogo", 2, 700)
	promo.EligibleDeviceTags = []string{"flagship"}

	cfg := types.NewQuoteConfig()
	cfg.Devices = []types.Device{
		{ID: "f1", ModelID: "flagship_a", Price: 1000, TradeInType: types.TradeInManual},
		{ID: "b1", ModelID: "budget_b", Price: 400, TradeInType: types.TradeInManual},
		{ID: "f2", ModelID: "flagship_a", Price: 1100, TradeInType: types.TradeInManual},
	}

	got := Optimize(cfg, []types.Promotion{promo}, models)

	for _, d := range got.Config.Devices {
		switch d.ID {
		case "f1":
			if d.AppliedPromoID != "flagship_bogo" {
				t.Errorf("cheapest flagship got %q, want flagship_bogo", d.AppliedPromoID)
			}
		case "b1", "f2":
			if d.HasPromo() {
				t.Errorf("device %s unexpectedly got a promo", d.ID)
			}
		}
	}
}

// Failing promotion-level conditions keep a BOGO out of the run entirely
func TestBogoConditionsGateThePromotion(t *testing.T) {
	promo := bogoPromo("family_bogo", 2, 800)
	promo.Conditions = []types.Condition{
		{Field: types.FieldLines, Operator: types.OpGTE, Value: 4},
	}

	cfg := threeDeviceConfig() // 3 lines
	got := Optimize(cfg, []types.Promotion{promo}, nil)

	if got.ChangesMade != 0 {
		t.Errorf("gated promotion still made %d changes", got.ChangesMade)
	}
}
