// Package types - Calculated quote breakdown types
package types

import "github.com/shopspring/decimal"

// AppliedPromotion records one promotion credited to a device line in a
// calculated breakdown
type AppliedPromotion struct {
	// PromotionID is the applied promotion
	PromotionID string `json:"promotion_id"`

	// Name is the promotion's display label (empty if not in the catalog)
	Name string `json:"name,omitempty"`

	// DeviceID is the device receiving the credit
	DeviceID string `json:"device_id"`

	// Value is the promotion's fixed monetary value applied to the device
	Value decimal.Decimal `json:"value"`
}

// CalculatedTotals is the immutable output of the pricing calculator:
// a complete monetary breakdown for one quote configuration. It is produced
// fresh on every calculation and never mutated; saved quote versions hold one
// as a point-in-time snapshot paired with the config that produced it.
type CalculatedTotals struct {
	// BasePlanPrice is the catalog tiered plan price before discounts
	BasePlanPrice decimal.Decimal `json:"base_plan_price"`

	// AutopayDiscount is the per-line autopay discount amount
	AutopayDiscount decimal.Decimal `json:"autopay_discount"`

	// InsiderDiscount is the percentage insider discount amount
	InsiderDiscount decimal.Decimal `json:"insider_discount"`

	// ThirdLineFreeDiscount is the credited marginal cost of the third line
	ThirdLineFreeDiscount decimal.Decimal `json:"third_line_free_discount"`

	// FinalPlanPrice is the plan price after all plan discounts
	FinalPlanPrice decimal.Decimal `json:"final_plan_price"`

	// InsuranceCost is the monthly insurance cost across all lines
	InsuranceCost decimal.Decimal `json:"insurance_cost"`

	// TotalDeviceCost is the sum of device retail prices
	TotalDeviceCost decimal.Decimal `json:"total_device_cost"`

	// TotalTradeIn is the sum of all trade-in values, manual and promo
	TotalTradeIn decimal.Decimal `json:"total_trade_in"`

	// TradeInCredit is the portion of TotalTradeIn entered manually
	TradeInCredit decimal.Decimal `json:"trade_in_credit"`

	// PromoCredit is the promo-derived portion paid as bill credits
	PromoCredit decimal.Decimal `json:"promo_credit"`

	// InstantRebate is the promo-derived portion applied at point of sale
	InstantRebate decimal.Decimal `json:"instant_rebate"`

	// MonthlyDevicePayment is the amortized monthly device financing cost
	MonthlyDevicePayment decimal.Decimal `json:"monthly_device_payment"`

	// ServicePlanCost is the monthly cost of attached service plans,
	// itemized separately from the plan summary total
	ServicePlanCost decimal.Decimal `json:"service_plan_cost"`

	// AccessoryMonthly is the monthly cost of financed accessories,
	// itemized separately from the plan summary total
	AccessoryMonthly decimal.Decimal `json:"accessory_monthly"`

	// AccessoryUpfront is the upfront cost of paid-in-full accessories
	// plus financed accessory down payments
	AccessoryUpfront decimal.Decimal `json:"accessory_upfront"`

	// CalculatedTaxes is the monthly tax amount, prorated per line
	CalculatedTaxes decimal.Decimal `json:"calculated_taxes"`

	// MonthlyTotal is plan + device payment + insurance + taxes
	MonthlyTotal decimal.Decimal `json:"monthly_total"`

	// DueToday is the one-time amount owed at point of sale
	DueToday decimal.Decimal `json:"due_today"`

	// DiscountsApplied names the plan discounts that took effect
	DiscountsApplied []string `json:"discounts_applied,omitempty"`

	// AppliedPromotions lists the promotions credited to device lines
	AppliedPromotions []AppliedPromotion `json:"applied_promotions,omitempty"`
}
