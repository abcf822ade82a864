// Package types - Quote configuration types
package types

// CustomerType identifies the customer segment a quote is priced for
type CustomerType string

const (
	// CustomerStandard is the default consumer segment
	CustomerStandard CustomerType = "STANDARD"

	// CustomerMilitary is the military / first-responder segment
	CustomerMilitary CustomerType = "MILITARY"

	// Customer55Plus is the 55-and-over segment
	Customer55Plus CustomerType = "PLUS_55"
)

// String returns the string representation
func (c CustomerType) String() string {
	return string(c)
}

// DeviceCategory classifies a device line
type DeviceCategory string

const (
	CategoryPhone   DeviceCategory = "PHONE"
	CategoryWatch   DeviceCategory = "WATCH"
	CategoryTablet  DeviceCategory = "TABLET"
	CategoryTracker DeviceCategory = "TRACKER"
)

// TradeInType tags the provenance of a device's trade-in value
type TradeInType string

const (
	// TradeInManual is a rep-entered trade-in value
	TradeInManual TradeInType = "manual"

	// TradeInPromo is a value substituted by an applied promotion
	TradeInPromo TradeInType = "promo"
)

// Device is one financed or BYOD handset, wearable, or tablet line.
// Invariant: TradeInType == TradeInPromo iff AppliedPromoID != "".
type Device struct {
	// ID is an opaque caller-assigned identifier, stable across recomputation
	ID string `json:"id"`

	// Category classifies the device line
	Category DeviceCategory `json:"category"`

	// ModelID references a catalog device model (optional)
	ModelID string `json:"model_id,omitempty"`

	// Price is the full retail price
	Price float64 `json:"price"`

	// TradeIn is the trade-in credit in dollars
	TradeIn float64 `json:"trade_in"`

	// TradeInType tags whether TradeIn was entered manually or promo-derived
	TradeInType TradeInType `json:"trade_in_type"`

	// AppliedPromoID references the promotion credited to this device ("" = none)
	AppliedPromoID string `json:"applied_promo_id,omitempty"`

	// TermMonths is the financing term selected for this device
	TermMonths int `json:"term_months"`

	// DownPayment is the upfront payment against the financed amount
	DownPayment float64 `json:"down_payment"`

	// ServicePlanID references a catalog service plan (non-phone categories)
	ServicePlanID string `json:"service_plan_id,omitempty"`

	// InsuranceID references a catalog insurance plan (non-phone categories)
	InsuranceID string `json:"insurance_id,omitempty"`
}

// ManualTradeIn returns the rep-entered trade-in value. A promo-substituted
// value does not count: promotion attachment decisions always compare against
// what the rep typed in, which is zero once a promotion owns the slot.
func (d Device) ManualTradeIn() float64 {
	if d.TradeInType == TradeInPromo {
		return 0
	}
	return d.TradeIn
}

// HasPromo reports whether a promotion is attached to this device
func (d Device) HasPromo() bool {
	return d.AppliedPromoID != ""
}

// AccessoryPayment selects how an accessory is paid for
type AccessoryPayment string

const (
	// PayInFull is a one-time upfront purchase
	PayInFull AccessoryPayment = "PAID_IN_FULL"

	// PayFinanced spreads the accessory over a financing term
	PayFinanced AccessoryPayment = "FINANCED"
)

// Accessory is a non-device add-on line on a quote
type Accessory struct {
	// ID is an opaque caller-assigned identifier
	ID string `json:"id"`

	// Name is a display label
	Name string `json:"name,omitempty"`

	// Price is the unit price
	Price float64 `json:"price"`

	// Quantity is the number of units
	Quantity int `json:"quantity"`

	// PaymentType selects upfront versus financed
	PaymentType AccessoryPayment `json:"payment_type"`

	// TermMonths is the financing term when financed
	TermMonths int `json:"term_months,omitempty"`

	// DownPayment is the upfront payment when financed
	DownPayment float64 `json:"down_payment,omitempty"`
}

// DiscountFlags are the account-level discount toggles on a quote
type DiscountFlags struct {
	// Autopay enables the per-line autopay discount
	Autopay bool `json:"autopay"`

	// Insider enables the percentage insider discount
	Insider bool `json:"insider"`

	// ThirdLineFree credits back the marginal cost of the third line
	ThirdLineFree bool `json:"third_line_free"`
}

// FeeFlags are the one-time fee toggles on a quote
type FeeFlags struct {
	// WaiveActivation waives the per-line activation fee
	WaiveActivation bool `json:"waive_activation"`
}

// QuoteConfig is the mutable working document for a quote. It is owned
// exclusively by the caller: every core operation takes a config by value
// and returns a new one (or a derived breakdown), never retaining a
// reference across calls.
type QuoteConfig struct {
	// CustomerName is the customer's display name
	CustomerName string `json:"customer_name,omitempty"`

	// CustomerEmail is the customer's email address
	CustomerEmail string `json:"customer_email,omitempty"`

	// CustomerPhone is the customer's phone number
	CustomerPhone string `json:"customer_phone,omitempty"`

	// CustomerType is the customer segment
	CustomerType CustomerType `json:"customer_type"`

	// Plan is the selected catalog plan id
	Plan string `json:"plan"`

	// Lines is the number of voice lines (>= 1)
	Lines int `json:"lines"`

	// Insurance is the selected catalog insurance plan id ("" = none)
	Insurance string `json:"insurance,omitempty"`

	// Devices is the ordered list of device lines
	Devices []Device `json:"devices"`

	// Accessories is the ordered list of accessory lines
	Accessories []Accessory `json:"accessories"`

	// Discounts are the account-level discount toggles
	Discounts DiscountFlags `json:"discounts"`

	// Fees are the one-time fee toggles
	Fees FeeFlags `json:"fees"`

	// TaxRate is the applicable tax rate in percent
	TaxRate float64 `json:"tax_rate"`
}

// NewQuoteConfig returns a config with single-line defaults
func NewQuoteConfig() QuoteConfig {
	return QuoteConfig{
		CustomerType: CustomerStandard,
		Lines:        1,
		Devices:      []Device{},
		Accessories:  []Accessory{},
	}
}

// Clone returns a deep copy of the config. Devices and accessories are
// value structs, so copying the slices severs all aliasing.
func (q QuoteConfig) Clone() QuoteConfig {
	out := q
	out.Devices = make([]Device, len(q.Devices))
	copy(out.Devices, q.Devices)
	out.Accessories = make([]Accessory, len(q.Accessories))
	copy(out.Accessories, q.Accessories)
	return out
}
