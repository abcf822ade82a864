// Package types - Promotion catalog types
package types

// PromoCategory groups promotions by what they discount
type PromoCategory string

const (
	PromoPlan      PromoCategory = "PLAN"
	PromoDevice    PromoCategory = "DEVICE"
	PromoBTS       PromoCategory = "BTS"
	PromoAccessory PromoCategory = "ACCESSORY"
	PromoAccount   PromoCategory = "ACCOUNT"
)

// StackingGroup expresses mutual exclusivity between promotions. Only one
// promotion per group may apply to the same line or device, except the Open
// group which stacks with anything.
type StackingGroup string

const (
	StackPlanDiscount StackingGroup = "PLAN_DISCOUNT"
	StackDeviceOffer  StackingGroup = "DEVICE_OFFER"
	StackBtsOffer     StackingGroup = "BTS_OFFER"
	StackOpen         StackingGroup = "OPEN"
)

// StacksWith reports whether two promotions in these groups may be combined
func (g StackingGroup) StacksWith(other StackingGroup) bool {
	if g == StackOpen || other == StackOpen {
		return true
	}
	return g != other
}

// Operator is a condition comparison operator
type Operator string

const (
	OpEquals      Operator = "EQUALS"
	OpNotEquals   Operator = "NOT_EQUALS"
	OpGTE         Operator = "GREATER_THAN_OR_EQUAL"
	OpLTE         Operator = "LESS_THAN_OR_EQUAL"
	OpIncludes    Operator = "INCLUDES"
)

// Well-known condition fields. The evaluator resolves against a closed set
// of accessors rather than reflecting over the config.
const (
	FieldCustomerType   = "customerType"
	FieldPlan           = "plan"
	FieldLines          = "lines"
	FieldTaxRate        = "taxRate"
	FieldDeviceCount    = "devices.length"
	FieldAccessoryCount = "accessories.length"
	FieldAutopay        = "discounts.autopay"
	FieldInsider        = "discounts.insider"
	FieldThirdLineFree  = "discounts.thirdLineFree"
)

// Condition is a single declarative predicate against a quote config.
// Value may be a number, a string (possibly comma-separated for INCLUDES),
// or a list of values.
type Condition struct {
	// Field is the config attribute being tested
	Field string `json:"field"`

	// Operator is the comparison operator
	Operator Operator `json:"operator"`

	// Value is the literal to compare against
	Value interface{} `json:"value"`
}

// EffectType identifies a promotion effect kind
type EffectType string

const (
	// EffectPlanDiscountFixed reduces the plan price by a fixed amount
	EffectPlanDiscountFixed EffectType = "PLAN_DISCOUNT_FIXED"

	// EffectPlanDiscountPercent reduces the plan price by a percentage
	EffectPlanDiscountPercent EffectType = "PLAN_DISCOUNT_PERCENT"

	// EffectDeviceCreditFixed credits a fixed amount against a device,
	// typically as monthly bill credits over the financing term
	EffectDeviceCreditFixed EffectType = "DEVICE_CREDIT_FIXED"

	// EffectDeviceInstantRebate reduces a device's price at point of sale
	EffectDeviceInstantRebate EffectType = "DEVICE_INSTANT_REBATE"

	// EffectServicePlanDiscount reduces an attached service plan's price
	EffectServicePlanDiscount EffectType = "SERVICE_PLAN_DISCOUNT"
)

// Effect is one monetary effect of a promotion
type Effect struct {
	// Type is the effect kind
	Type EffectType `json:"type"`

	// Value is the dollar or percent amount, per Type
	Value float64 `json:"value"`

	// DurationMonths bounds recurring effects (0 = promotion default)
	DurationMonths int `json:"duration_months,omitempty"`
}

// TradeInRequirement constrains a device's manual trade-in for eligibility
type TradeInRequirement string

const (
	TradeInRequired   TradeInRequirement = "REQUIRED"
	TradeInNotAllowed TradeInRequirement = "NOT_ALLOWED"
	TradeInOptional   TradeInRequirement = "OPTIONAL"
)

// DeviceRequirements are per-device constraints a promotion imposes
type DeviceRequirements struct {
	// TradeIn constrains the device's manual trade-in value
	TradeIn TradeInRequirement `json:"trade_in,omitempty"`

	// NewLineRequired requires activating a new line
	NewLineRequired bool `json:"new_line_required,omitempty"`

	// PortInRequired requires porting a number from another carrier
	PortInRequired bool `json:"port_in_required,omitempty"`
}

// BogoConfig configures a buy-one-get-one style promotion
type BogoConfig struct {
	// BuyQuantity is the number of qualifying devices per set
	BuyQuantity int `json:"buy_quantity"`

	// DiscountTarget names which device in a set receives the credit
	DiscountTarget string `json:"discount_target,omitempty"`
}

// Promotion is a catalog promotional offer, read-only to the core
type Promotion struct {
	// ID uniquely identifies the promotion
	ID string `json:"id"`

	// Name is a display label
	Name string `json:"name"`

	// Description provides additional context
	Description string `json:"description,omitempty"`

	// Category groups the promotion by what it discounts
	Category PromoCategory `json:"category"`

	// StackingGroup expresses mutual exclusivity with other promotions
	StackingGroup StackingGroup `json:"stacking_group"`

	// Active gates the promotion; inactive promotions are never surfaced
	Active bool `json:"active"`

	// Bogo configures BOGO matching (nil for single-device promotions)
	Bogo *BogoConfig `json:"bogo,omitempty"`

	// Conditions must all pass for the promotion to be eligible
	Conditions []Condition `json:"conditions,omitempty"`

	// DeviceRequirements are per-device eligibility constraints
	DeviceRequirements *DeviceRequirements `json:"device_requirements,omitempty"`

	// EligibleDeviceIDs is a device-model id allowlist
	EligibleDeviceIDs []string `json:"eligible_device_ids,omitempty"`

	// EligibleDeviceTags is a device-model tag allowlist
	EligibleDeviceTags []string `json:"eligible_device_tags,omitempty"`

	// Effects are the promotion's monetary effects, in application order
	Effects []Effect `json:"effects"`
}

// FixedDeviceValue returns the promotion's fixed monetary value against a
// single device: the sum of its fixed credit and instant rebate effects.
func (p Promotion) FixedDeviceValue() float64 {
	var total float64
	for _, e := range p.Effects {
		switch e.Type {
		case EffectDeviceCreditFixed, EffectDeviceInstantRebate:
			total += e.Value
		case EffectPlanDiscountFixed, EffectPlanDiscountPercent, EffectServicePlanDiscount:
			// plan-level effects carry no per-device value
		}
	}
	return total
}

// InstantRebateValue returns the sum of the promotion's instant rebate effects
func (p Promotion) InstantRebateValue() float64 {
	var total float64
	for _, e := range p.Effects {
		if e.Type == EffectDeviceInstantRebate {
			total += e.Value
		}
	}
	return total
}

// RestrictsModels reports whether the promotion carries a device-model allowlist
func (p Promotion) RestrictsModels() bool {
	return len(p.EligibleDeviceIDs) > 0 || len(p.EligibleDeviceTags) > 0
}

// MatchesModel reports whether a catalog model satisfies the promotion's
// allowlist. Promotions with no allowlist match any model, including devices
// with no catalog model at all.
func (p Promotion) MatchesModel(model *DeviceModel) bool {
	if !p.RestrictsModels() {
		return true
	}
	if model == nil {
		return false
	}
	for _, id := range p.EligibleDeviceIDs {
		if id == model.ID {
			return true
		}
	}
	for _, tag := range p.EligibleDeviceTags {
		for _, mt := range model.Tags {
			if tag == mt {
				return true
			}
		}
	}
	return false
}
