// Package apply performs manual promotion application.
// When a rep picks a promotion straight from the catalog (as opposed to the
// optimizer's automatic selection) the config may need to be reshaped first:
// the customer segment and plan are switched to satisfy the promotion's
// conditions, and device or BTS promotions append a placeholder line for the
// rep to fill in. Existing devices are never removed or edited.
package apply

import (
	"strings"

	"github.com/google/uuid"

	"wireless-quote/core/types"
)

// Apply returns a new config with the promotion's prerequisites satisfied
// and, for device and BTS promotions, a placeholder line appended.
func Apply(cfg types.QuoteConfig, promo types.Promotion, models []types.DeviceModel, servicePlans []types.ServicePlan) types.QuoteConfig {
	out := cfg.Clone()

	for _, cond := range promo.Conditions {
		switch {
		case cond.Field == types.FieldCustomerType && cond.Operator == types.OpEquals:
			if s := literalString(cond.Value); s != "" {
				out.CustomerType = types.CustomerType(s)
			}
		case cond.Field == types.FieldPlan && cond.Operator == types.OpIncludes:
			allowed := literalList(cond.Value)
			if len(allowed) > 0 && !contains(allowed, out.Plan) {
				out.Plan = allowed[0]
			}
		}
	}

	switch promo.Category {
	case types.PromoDevice:
		out.Devices = append(out.Devices, placeholderDevice(promo, models))
	case types.PromoBTS:
		out.Devices = append(out.Devices, btsDevice(promo, models, servicePlans))
	}

	return out
}

// placeholderDevice builds a new device line credited to the promotion.
// Defaults come from the first catalog model matching the promotion's
// allowlist, if it has one.
func placeholderDevice(promo types.Promotion, models []types.DeviceModel) types.Device {
	dev := types.Device{
		ID:             uuid.NewString(),
		Category:       types.CategoryPhone,
		TradeIn:        promo.FixedDeviceValue(),
		TradeInType:    types.TradeInPromo,
		AppliedPromoID: promo.ID,
	}
	if model := firstMatchingModel(promo, models); model != nil {
		dev.Category = model.Category
		dev.ModelID = model.ID
		dev.Price = model.DefaultPrice()
		dev.TermMonths = model.DefaultTermMonths
	}
	return dev
}

// btsDevice builds a new non-phone line with a matching service plan and no
// promotion attachment: BTS promotions discount at the plan level, not via
// the device trade-in/credit path.
func btsDevice(promo types.Promotion, models []types.DeviceModel, servicePlans []types.ServicePlan) types.Device {
	dev := types.Device{
		ID:          uuid.NewString(),
		Category:    types.CategoryWatch,
		TradeInType: types.TradeInManual,
	}
	if model := firstMatchingModel(promo, models); model != nil {
		dev.Category = model.Category
		dev.ModelID = model.ID
		dev.Price = model.DefaultPrice()
		dev.TermMonths = model.DefaultTermMonths
	}
	for _, sp := range servicePlans {
		if sp.DeviceCategory == dev.Category {
			dev.ServicePlanID = sp.ID
			break
		}
	}
	return dev
}

func firstMatchingModel(promo types.Promotion, models []types.DeviceModel) *types.DeviceModel {
	if !promo.RestrictsModels() {
		return nil
	}
	for i := range models {
		if promo.MatchesModel(&models[i]) {
			return &models[i]
		}
	}
	return nil
}

// literalString renders a condition literal as a plain string
func literalString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	}
	return ""
}

// literalList renders a condition literal as a list of strings, splitting
// comma-separated string literals the same way INCLUDES evaluation does
func literalList(v interface{}) []string {
	switch lit := v.(type) {
	case string:
		parts := strings.Split(lit, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case []string:
		return lit
	case []interface{}:
		out := make([]string, 0, len(lit))
		for _, e := range lit {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
