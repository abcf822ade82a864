// Package catalog - Built-in demo catalog
package catalog

import "wireless-quote/core/types"

// Default returns a small built-in catalog usable without catalog files.
// It covers every table so demos and hosts can run out of the box.
func Default() *types.Catalog {
	return &types.Catalog{
		Plans: []types.Plan{
			{
				ID:               "essentials",
				Name:             "Essentials Saver",
				PricingModel:     "tiered",
				TieredPrices:     []float64{60, 90, 105, 120, 135},
				MaxLines:         5,
				AvailableFor:     []types.CustomerType{types.CustomerStandard},
				AllowedDiscounts: []string{"autopay"},
			},
			{
				ID:               "go_plus",
				Name:             "Go Plus",
				PricingModel:     "tiered",
				TieredPrices:     []float64{75, 130, 150, 170, 190, 210},
				MaxLines:         6,
				AvailableFor:     []types.CustomerType{types.CustomerStandard, types.CustomerMilitary},
				TaxesIncluded:    true,
				AllowedDiscounts: []string{"autopay", "insider", "third_line_free"},
			},
			{
				ID:               "unlimited_55",
				Name:             "Unlimited 55+",
				PricingModel:     "tiered",
				TieredPrices:     []float64{50, 70},
				MaxLines:         2,
				AvailableFor:     []types.CustomerType{types.Customer55Plus},
				TaxesIncluded:    true,
				AllowedDiscounts: []string{"autopay"},
			},
		},
		Insurance: []types.InsurancePlan{
			{ID: "protect_basic", Name: "Protection Basic", Price: 12},
			{ID: "protect_360", Name: "Protection 360", Price: 18},
		},
		Discounts: types.DiscountSettings{
			Autopay:        5,
			InsiderPercent: 20,
			ThirdLineFree:  true,
		},
		DeviceModels: []types.DeviceModel{
			{
				ID:                "galaxy_s25",
				Name:              "Galaxy S25",
				Category:          types.CategoryPhone,
				Tags:              []string{"flagship", "android"},
				DefaultTermMonths: 24,
				Variants: []types.DeviceVariant{
					{Name: "256GB", Price: 999.99},
					{Name: "512GB", Price: 1119.99},
				},
			},
			{
				ID:                "iphone_16",
				Name:              "iPhone 16",
				Category:          types.CategoryPhone,
				Tags:              []string{"flagship", "ios"},
				DefaultTermMonths: 24,
				Variants: []types.DeviceVariant{
					{Name: "128GB", Price: 829.99},
					{Name: "256GB", Price: 929.99},
				},
			},
			{
				ID:                "pixel_9a",
				Name:              "Pixel 9a",
				Category:          types.CategoryPhone,
				Tags:              []string{"midrange", "android"},
				DefaultTermMonths: 24,
				Variants: []types.DeviceVariant{
					{Name: "128GB", Price: 499.99},
				},
			},
			{
				ID:                "watch_7",
				Name:              "Galaxy Watch 7",
				Category:          types.CategoryWatch,
				Tags:              []string{"wearable"},
				DefaultTermMonths: 24,
				Variants: []types.DeviceVariant{
					{Name: "44mm", Price: 329.99},
				},
			},
			{
				ID:                "tab_a9",
				Name:              "Galaxy Tab A9",
				Category:          types.CategoryTablet,
				Tags:              []string{"tablet"},
				DefaultTermMonths: 24,
				Variants: []types.DeviceVariant{
					{Name: "64GB", Price: 219.99},
				},
			},
		},
		ServicePlans: []types.ServicePlan{
			{ID: "watch_unlimited", Name: "Watch Unlimited", DeviceCategory: types.CategoryWatch, Price: 12},
			{ID: "tablet_data", Name: "Tablet Data 5GB", DeviceCategory: types.CategoryTablet, Price: 20},
			{ID: "tracker_data", Name: "Tracker Connect", DeviceCategory: types.CategoryTracker, Price: 5},
		},
		Promotions: []types.Promotion{
			{
				ID:            "bogo_flagship",
				Name:          "Buy One Get $700 Off",
				Description:   "Buy two qualifying flagship phones, get up to $700 off the second",
				Category:      types.PromoDevice,
				StackingGroup: types.StackDeviceOffer,
				Active:        true,
				Bogo:          &types.BogoConfig{BuyQuantity: 2, DiscountTarget: "CHEAPEST"},
				Conditions: []types.Condition{
					{Field: types.FieldLines, Operator: types.OpGTE, Value: 2.0},
				},
				EligibleDeviceTags: []string{"flagship"},
				Effects: []types.Effect{
					{Type: types.EffectDeviceCreditFixed, Value: 700, DurationMonths: 24},
				},
			},
			{
				ID:            "trade_up_800",
				Name:          "Trade In, Trade Up",
				Description:   "Up to $800 off any phone with an eligible trade-in",
				Category:      types.PromoDevice,
				StackingGroup: types.StackDeviceOffer,
				Active:        true,
				Conditions: []types.Condition{
					{Field: types.FieldPlan, Operator: types.OpIncludes, Value: "go_plus,unlimited_55"},
				},
				DeviceRequirements: &types.DeviceRequirements{TradeIn: types.TradeInRequired},
				Effects: []types.Effect{
					{Type: types.EffectDeviceCreditFixed, Value: 700, DurationMonths: 24},
					{Type: types.EffectDeviceInstantRebate, Value: 100},
				},
			},
			{
				ID:            "midrange_on_us",
				Name:          "Pixel 9a On Us",
				Description:   "Pixel 9a free with a new line, no trade-in needed",
				Category:      types.PromoDevice,
				StackingGroup: types.StackDeviceOffer,
				Active:        true,
				Conditions: []types.Condition{
					{Field: types.FieldLines, Operator: types.OpGTE, Value: 2.0},
				},
				DeviceRequirements: &types.DeviceRequirements{
					TradeIn:         types.TradeInNotAllowed,
					NewLineRequired: true,
				},
				EligibleDeviceIDs: []string{"pixel_9a"},
				Effects: []types.Effect{
					{Type: types.EffectDeviceCreditFixed, Value: 499.99, DurationMonths: 24},
				},
			},
			{
				ID:            "military_plan",
				Name:          "Military Discount Plan",
				Description:   "Go Plus pricing for military and first responders",
				Category:      types.PromoPlan,
				StackingGroup: types.StackPlanDiscount,
				Active:        true,
				Conditions: []types.Condition{
					{Field: types.FieldCustomerType, Operator: types.OpEquals, Value: string(types.CustomerMilitary)},
					{Field: types.FieldPlan, Operator: types.OpIncludes, Value: "go_plus"},
				},
				Effects: []types.Effect{
					{Type: types.EffectPlanDiscountPercent, Value: 15},
				},
			},
			{
				ID:            "watch_half_off",
				Name:          "Watch Plan Half Off",
				Description:   "Add a watch line, get the watch plan at half price",
				Category:      types.PromoBTS,
				StackingGroup: types.StackBtsOffer,
				Active:        true,
				Conditions: []types.Condition{
					{Field: types.FieldLines, Operator: types.OpGTE, Value: 1.0},
				},
				EligibleDeviceTags: []string{"wearable"},
				Effects: []types.Effect{
					{Type: types.EffectServicePlanDiscount, Value: 6, DurationMonths: 24},
				},
			},
			{
				ID:            "legacy_bogo",
				Name:          "Legacy BOGO (expired)",
				Category:      types.PromoDevice,
				StackingGroup: types.StackDeviceOffer,
				Active:        false,
				Bogo:          &types.BogoConfig{BuyQuantity: 2},
				Effects: []types.Effect{
					{Type: types.EffectDeviceCreditFixed, Value: 500},
				},
			},
		},
	}
}
