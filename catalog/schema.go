// Package catalog - HCL file schemas
// Catalog data ships as HCL documents, one file per table. The block structs
// here mirror the wire layout; conversion to core types happens in the
// loader so parsing concerns never leak into the core.
package catalog

import (
	"github.com/zclconf/go-cty/cty"

	"wireless-quote/core/types"
)

type plansFile struct {
	Discounts *discountsBlock `hcl:"discounts,block"`
	Plans     []planBlock     `hcl:"plan,block"`
}

type planBlock struct {
	ID               string    `hcl:"id,label"`
	Name             string    `hcl:"name"`
	PricingModel     string    `hcl:"pricing_model,optional"`
	TieredPrices     []float64 `hcl:"tiered_prices"`
	MaxLines         int       `hcl:"max_lines,optional"`
	AvailableFor     []string  `hcl:"available_for,optional"`
	TaxesIncluded    bool      `hcl:"taxes_included,optional"`
	AllowedDiscounts []string  `hcl:"allowed_discounts,optional"`
}

type discountsBlock struct {
	Autopay        float64 `hcl:"autopay,optional"`
	InsiderPercent float64 `hcl:"insider_percent,optional"`
	ThirdLineFree  bool    `hcl:"third_line_free,optional"`
}

type insuranceFile struct {
	Plans []insuranceBlock `hcl:"insurance,block"`
}

type insuranceBlock struct {
	ID    string  `hcl:"id,label"`
	Name  string  `hcl:"name"`
	Price float64 `hcl:"price"`
}

type devicesFile struct {
	Models []modelBlock `hcl:"model,block"`
}

type modelBlock struct {
	ID                string         `hcl:"id,label"`
	Name              string         `hcl:"name"`
	Category          string         `hcl:"category"`
	Tags              []string       `hcl:"tags,optional"`
	DefaultTermMonths int            `hcl:"default_term_months,optional"`
	Variants          []variantBlock `hcl:"variant,block"`
}

type variantBlock struct {
	Name  string  `hcl:"name,optional"`
	Price float64 `hcl:"price"`
}

type servicePlansFile struct {
	Plans []servicePlanBlock `hcl:"service_plan,block"`
}

type servicePlanBlock struct {
	ID             string  `hcl:"id,label"`
	Name           string  `hcl:"name"`
	DeviceCategory string  `hcl:"device_category"`
	Price          float64 `hcl:"price"`
}

type promotionsFile struct {
	Promotions []promotionBlock `hcl:"promotion,block"`
}

type promotionBlock struct {
	ID                 string            `hcl:"id,label"`
	Name               string            `hcl:"name"`
	Description        string            `hcl:"description,optional"`
	Category           string            `hcl:"category"`
	StackingGroup      string            `hcl:"stacking_group,optional"`
	Active             bool              `hcl:"active,optional"`
	Bogo               *bogoBlock        `hcl:"bogo,block"`
	Conditions         []conditionBlock  `hcl:"condition,block"`
	DeviceRequirements *requirementBlock `hcl:"device_requirements,block"`
	EligibleDeviceIDs  []string          `hcl:"eligible_device_ids,optional"`
	EligibleDeviceTags []string          `hcl:"eligible_device_tags,optional"`
	Effects            []effectBlock     `hcl:"effect,block"`
}

type bogoBlock struct {
	BuyQuantity    int    `hcl:"buy_quantity"`
	DiscountTarget string `hcl:"discount_target,optional"`
}

type conditionBlock struct {
	Field    string    `hcl:"field"`
	Operator string    `hcl:"operator"`
	Value    cty.Value `hcl:"value"`
}

type requirementBlock struct {
	TradeIn         string `hcl:"trade_in,optional"`
	NewLineRequired bool   `hcl:"new_line_required,optional"`
	PortInRequired  bool   `hcl:"port_in_required,optional"`
}

type effectBlock struct {
	Type           string  `hcl:"type"`
	Value          float64 `hcl:"value"`
	DurationMonths int     `hcl:"duration_months,optional"`
}

func (b planBlock) toPlan() types.Plan {
	available := make([]types.CustomerType, 0, len(b.AvailableFor))
	for _, ct := range b.AvailableFor {
		available = append(available, types.CustomerType(ct))
	}
	maxLines := b.MaxLines
	if maxLines == 0 {
		maxLines = len(b.TieredPrices)
	}
	return types.Plan{
		ID:               b.ID,
		Name:             b.Name,
		PricingModel:     b.PricingModel,
		TieredPrices:     b.TieredPrices,
		MaxLines:         maxLines,
		AvailableFor:     available,
		TaxesIncluded:    b.TaxesIncluded,
		AllowedDiscounts: b.AllowedDiscounts,
	}
}

func (b modelBlock) toModel() types.DeviceModel {
	variants := make([]types.DeviceVariant, 0, len(b.Variants))
	for _, v := range b.Variants {
		variants = append(variants, types.DeviceVariant{Name: v.Name, Price: v.Price})
	}
	return types.DeviceModel{
		ID:                b.ID,
		Name:              b.Name,
		Category:          types.DeviceCategory(b.Category),
		Tags:              b.Tags,
		DefaultTermMonths: b.DefaultTermMonths,
		Variants:          variants,
	}
}

func (b promotionBlock) toPromotion() types.Promotion {
	promo := types.Promotion{
		ID:                 b.ID,
		Name:               b.Name,
		Description:        b.Description,
		Category:           types.PromoCategory(b.Category),
		StackingGroup:      types.StackingGroup(b.StackingGroup),
		Active:             b.Active,
		EligibleDeviceIDs:  b.EligibleDeviceIDs,
		EligibleDeviceTags: b.EligibleDeviceTags,
	}
	if promo.StackingGroup == "" {
		promo.StackingGroup = types.StackOpen
	}
	if b.Bogo != nil {
		promo.Bogo = &types.BogoConfig{
			BuyQuantity:    b.Bogo.BuyQuantity,
			DiscountTarget: b.Bogo.DiscountTarget,
		}
	}
	if b.DeviceRequirements != nil {
		promo.DeviceRequirements = &types.DeviceRequirements{
			TradeIn:         types.TradeInRequirement(b.DeviceRequirements.TradeIn),
			NewLineRequired: b.DeviceRequirements.NewLineRequired,
			PortInRequired:  b.DeviceRequirements.PortInRequired,
		}
	}
	for _, c := range b.Conditions {
		promo.Conditions = append(promo.Conditions, types.Condition{
			Field:    c.Field,
			Operator: types.Operator(c.Operator),
			Value:    ctyToGo(c.Value),
		})
	}
	for _, e := range b.Effects {
		promo.Effects = append(promo.Effects, types.Effect{
			Type:           types.EffectType(e.Type),
			Value:          e.Value,
			DurationMonths: e.DurationMonths,
		})
	}
	return promo
}

// ctyToGo converts an HCL attribute value to the plain Go representation the
// condition evaluator expects: float64, string, bool, or a slice of those.
func ctyToGo(v cty.Value) interface{} {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}
	ty := v.Type()
	switch {
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f
	case ty == cty.String:
		return v.AsString()
	case ty == cty.Bool:
		return v.True()
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var out []interface{}
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			out = append(out, ctyToGo(elem))
		}
		return out
	}
	return nil
}
