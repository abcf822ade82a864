// Package types - Catalog types supplied by the host application
package types

// Plan is a rate plan with cumulative tiered pricing. TieredPrices[n-1] is
// the total monthly price for n lines.
type Plan struct {
	// ID uniquely identifies the plan
	ID string `json:"id"`

	// Name is a display label
	Name string `json:"name"`

	// PricingModel describes the pricing structure (e.g. "tiered")
	PricingModel string `json:"pricing_model"`

	// TieredPrices holds the cumulative monthly price per line count
	TieredPrices []float64 `json:"tiered_prices"`

	// MaxLines is the maximum supported line count
	MaxLines int `json:"max_lines"`

	// AvailableFor lists the customer segments the plan is sold to
	AvailableFor []CustomerType `json:"available_for,omitempty"`

	// TaxesIncluded indicates taxes are baked into the plan price
	TaxesIncluded bool `json:"taxes_included"`

	// AllowedDiscounts lists discount names the plan may combine with
	AllowedDiscounts []string `json:"allowed_discounts,omitempty"`
}

// PriceForLines returns the cumulative monthly price for n lines, or 0
// when the tier is absent from the catalog.
func (p Plan) PriceForLines(n int) float64 {
	if n < 1 || n > len(p.TieredPrices) {
		return 0
	}
	return p.TieredPrices[n-1]
}

// InsurancePlan is a per-line device protection plan
type InsurancePlan struct {
	// ID uniquely identifies the insurance plan
	ID string `json:"id"`

	// Name is a display label
	Name string `json:"name"`

	// Price is the monthly price per line
	Price float64 `json:"price"`
}

// DiscountSettings are the host-configured discount rates
type DiscountSettings struct {
	// Autopay is the per-line autopay discount in dollars
	Autopay float64 `json:"autopay"`

	// InsiderPercent is the insider discount as a percentage of the base plan
	InsiderPercent float64 `json:"insider_percent"`

	// ThirdLineFree gates the third-line-free discount globally
	ThirdLineFree bool `json:"third_line_free"`
}

// DeviceVariant is one purchasable configuration of a device model
type DeviceVariant struct {
	// Name labels the variant (e.g. storage size)
	Name string `json:"name,omitempty"`

	// Price is the full retail price
	Price float64 `json:"price"`
}

// DeviceModel is a catalog device model
type DeviceModel struct {
	// ID uniquely identifies the model
	ID string `json:"id"`

	// Name is a display label
	Name string `json:"name"`

	// Category classifies the model
	Category DeviceCategory `json:"category"`

	// Tags are free-form labels used by promotion allowlists
	Tags []string `json:"tags,omitempty"`

	// DefaultTermMonths is the default financing term
	DefaultTermMonths int `json:"default_term_months"`

	// Variants are the purchasable configurations
	Variants []DeviceVariant `json:"variants,omitempty"`
}

// DefaultPrice returns the first variant's price, or 0 without variants
func (m DeviceModel) DefaultPrice() float64 {
	if len(m.Variants) == 0 {
		return 0
	}
	return m.Variants[0].Price
}

// ServicePlan is a connectivity plan for non-phone devices
type ServicePlan struct {
	// ID uniquely identifies the service plan
	ID string `json:"id"`

	// Name is a display label
	Name string `json:"name"`

	// DeviceCategory is the device category the plan serves
	DeviceCategory DeviceCategory `json:"device_category"`

	// Price is the monthly price
	Price float64 `json:"price"`
}

// Catalog aggregates all read-only catalog data the core consumes
type Catalog struct {
	// Plans is the rate plan pricing table
	Plans []Plan `json:"plans"`

	// Insurance is the insurance pricing table
	Insurance []InsurancePlan `json:"insurance"`

	// Discounts are the discount-rate settings
	Discounts DiscountSettings `json:"discounts"`

	// DeviceModels is the device catalog
	DeviceModels []DeviceModel `json:"device_models"`

	// ServicePlans is the service plan catalog
	ServicePlans []ServicePlan `json:"service_plans"`

	// Promotions is the promotion catalog
	Promotions []Promotion `json:"promotions"`
}

// PlanByID returns the plan with the given id, or nil
func (c *Catalog) PlanByID(id string) *Plan {
	for i := range c.Plans {
		if c.Plans[i].ID == id {
			return &c.Plans[i]
		}
	}
	return nil
}

// InsuranceByID returns the insurance plan with the given id, or nil
func (c *Catalog) InsuranceByID(id string) *InsurancePlan {
	for i := range c.Insurance {
		if c.Insurance[i].ID == id {
			return &c.Insurance[i]
		}
	}
	return nil
}

// ModelByID returns the device model with the given id, or nil
func (c *Catalog) ModelByID(id string) *DeviceModel {
	for i := range c.DeviceModels {
		if c.DeviceModels[i].ID == id {
			return &c.DeviceModels[i]
		}
	}
	return nil
}

// ServicePlanByID returns the service plan with the given id, or nil
func (c *Catalog) ServicePlanByID(id string) *ServicePlan {
	for i := range c.ServicePlans {
		if c.ServicePlans[i].ID == id {
			return &c.ServicePlans[i]
		}
	}
	return nil
}

// PromotionByID returns the promotion with the given id, or nil
func (c *Catalog) PromotionByID(id string) *Promotion {
	for i := range c.Promotions {
		if c.Promotions[i].ID == id {
			return &c.Promotions[i]
		}
	}
	return nil
}
