// Package pricing - Deterministic quote breakdown calculation
// Calculate is a pure function from a resolved config plus catalog data to a
// complete monetary breakdown. The order of operations below is the visible
// price to the customer and is fixed: plan tier, plan discounts, insurance,
// device financing, per-line tax proration, due-today. Missing catalog
// references contribute zero; malformed numeric input is coerced to zero.
// Identical inputs always produce identical output.
package pricing

import (
	"github.com/shopspring/decimal"

	"wireless-quote/core/money"
	"wireless-quote/core/types"
)

// amortizationMonths is the fixed financing window used for the monthly
// estimate view. The quote summary amortizes every device over 24 months
// regardless of the device's own selected term.
const amortizationMonths = 24

// Calculate produces the full monetary breakdown for a config
func Calculate(cfg types.QuoteConfig, cat *types.Catalog) types.CalculatedTotals {
	if cat == nil {
		cat = &types.Catalog{}
	}

	lines := cfg.Lines
	if lines < 0 {
		lines = 0
	}
	plan := cat.PlanByID(cfg.Plan)
	priceFor := func(n int) decimal.Decimal {
		if plan == nil {
			return decimal.Zero
		}
		return money.FromFloat(plan.PriceForLines(n))
	}

	base := priceFor(lines)
	settings := cat.Discounts

	var autopay, insider, thirdLineFree decimal.Decimal
	var applied []string
	if cfg.Discounts.Autopay {
		autopay = decimal.NewFromInt(int64(lines)).Mul(money.FromFloat(settings.Autopay))
		applied = append(applied, "AutoPay")
	}
	if cfg.Discounts.Insider {
		insider = money.Percent(base, settings.InsiderPercent)
		applied = append(applied, "Insider")
	}
	if cfg.Discounts.ThirdLineFree && settings.ThirdLineFree && lines >= 3 {
		thirdLineFree = priceFor(3).Sub(priceFor(2))
		applied = append(applied, "Third Line Free")
	}
	final := base.Sub(autopay).Sub(insider).Sub(thirdLineFree)

	var insuranceUnit decimal.Decimal
	if ins := cat.InsuranceByID(cfg.Insurance); ins != nil {
		insuranceUnit = money.FromFloat(ins.Price)
	}
	insuranceCost := insuranceUnit.Mul(decimal.NewFromInt(int64(lines)))

	deviceTotals := sumDevices(cfg.Devices, cat)
	accessoryTotals := sumAccessories(cfg.Accessories)

	taxes := prorateTaxes(plan, priceFor, insuranceUnit, lines, cfg.TaxRate)

	monthlyTotal := final.
		Add(deviceTotals.monthlyPayment).
		Add(insuranceCost).
		Add(taxes)

	dueToday := money.Percent(deviceTotals.clampedNet, cfg.TaxRate)

	return types.CalculatedTotals{
		BasePlanPrice:         money.Cents(base),
		AutopayDiscount:       money.Cents(autopay),
		InsiderDiscount:       money.Cents(insider),
		ThirdLineFreeDiscount: money.Cents(thirdLineFree),
		FinalPlanPrice:        money.Cents(final),
		InsuranceCost:         money.Cents(insuranceCost),
		TotalDeviceCost:       money.Cents(deviceTotals.cost),
		TotalTradeIn:          money.Cents(deviceTotals.tradeIn),
		TradeInCredit:         money.Cents(deviceTotals.manualCredit),
		PromoCredit:           money.Cents(deviceTotals.promoCredit),
		InstantRebate:         money.Cents(deviceTotals.instantRebate),
		MonthlyDevicePayment:  money.Cents(deviceTotals.monthlyPayment),
		ServicePlanCost:       money.Cents(deviceTotals.servicePlanCost),
		AccessoryMonthly:      money.Cents(accessoryTotals.monthly),
		AccessoryUpfront:      money.Cents(accessoryTotals.upfront),
		CalculatedTaxes:       money.Cents(taxes),
		MonthlyTotal:          money.Cents(monthlyTotal),
		DueToday:              money.Cents(dueToday),
		DiscountsApplied:      applied,
		AppliedPromotions:     deviceTotals.appliedPromos,
	}
}

type deviceSums struct {
	cost            decimal.Decimal
	tradeIn         decimal.Decimal
	manualCredit    decimal.Decimal
	promoCredit     decimal.Decimal
	instantRebate   decimal.Decimal
	monthlyPayment  decimal.Decimal
	clampedNet      decimal.Decimal
	servicePlanCost decimal.Decimal
	appliedPromos   []types.AppliedPromotion
}

// sumDevices accumulates per-device financing figures. Each device's net
// cost is floored at zero before amortizing, so a trade-in exceeding the
// price never produces a negative payment.
func sumDevices(devices []types.Device, cat *types.Catalog) deviceSums {
	var s deviceSums
	months := decimal.NewFromInt(amortizationMonths)

	for _, d := range devices {
		price := money.FromFloat(d.Price)
		trade := money.FromFloat(d.TradeIn)
		s.cost = s.cost.Add(price)
		s.tradeIn = s.tradeIn.Add(trade)

		net := money.ClampZero(price.Sub(trade))
		s.clampedNet = s.clampedNet.Add(net)
		s.monthlyPayment = s.monthlyPayment.Add(net.Div(months))

		if d.HasPromo() {
			var name string
			rebate := decimal.Zero
			if promo := cat.PromotionByID(d.AppliedPromoID); promo != nil {
				name = promo.Name
				rebate = decimal.Min(money.FromFloat(promo.InstantRebateValue()), trade)
			}
			s.instantRebate = s.instantRebate.Add(rebate)
			s.promoCredit = s.promoCredit.Add(trade.Sub(rebate))
			s.appliedPromos = append(s.appliedPromos, types.AppliedPromotion{
				PromotionID: d.AppliedPromoID,
				Name:        name,
				DeviceID:    d.ID,
				Value:       money.Cents(trade),
			})
		} else {
			s.manualCredit = s.manualCredit.Add(trade)
		}

		if d.ServicePlanID != "" {
			if sp := cat.ServicePlanByID(d.ServicePlanID); sp != nil {
				s.servicePlanCost = s.servicePlanCost.Add(money.FromFloat(sp.Price))
			}
		}
	}
	return s
}

type accessorySums struct {
	monthly decimal.Decimal
	upfront decimal.Decimal
}

// sumAccessories itemizes accessory costs. Paid-in-full accessories land in
// the upfront figure; financed ones amortize over their own term with the
// down payment due upfront. These are display line items outside the plan
// summary totals.
func sumAccessories(accessories []types.Accessory) accessorySums {
	var s accessorySums
	for _, a := range accessories {
		qty := a.Quantity
		if qty < 0 {
			qty = 0
		}
		total := money.FromFloat(a.Price).Mul(decimal.NewFromInt(int64(qty)))
		if a.PaymentType == types.PayFinanced {
			term := a.TermMonths
			if term <= 0 {
				term = amortizationMonths
			}
			down := money.FromFloat(a.DownPayment)
			financed := money.ClampZero(total.Sub(down))
			s.monthly = s.monthly.Add(financed.Div(decimal.NewFromInt(int64(term))))
			s.upfront = s.upfront.Add(down)
		} else {
			s.upfront = s.upfront.Add(total)
		}
	}
	return s
}

// prorateTaxes computes monthly taxes per line: each line is taxed on its
// marginal plan cost (the tier delta it adds) plus one unit of insurance.
// Plans with taxes included contribute nothing here.
func prorateTaxes(plan *types.Plan, priceFor func(int) decimal.Decimal, insuranceUnit decimal.Decimal, lines int, taxRate float64) decimal.Decimal {
	if plan != nil && plan.TaxesIncluded {
		return decimal.Zero
	}
	taxes := decimal.Zero
	for i := 0; i < lines; i++ {
		lineCost := priceFor(i + 1).Sub(priceFor(i))
		taxable := lineCost.Add(insuranceUnit)
		taxes = taxes.Add(money.Percent(taxable, taxRate))
	}
	return taxes
}
