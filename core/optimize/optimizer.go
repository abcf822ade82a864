// Package optimize selects promotions for a quote's devices.
// Two passes over a working copy of the device list: BOGO set matching in
// promotion catalog order, then a best-value single-device pass for every
// device left unconsumed. The heuristic is intentionally local and greedy
// (per promotion, price sorted) rather than globally optimal across all
// promotions at once; the exact pairing rules are load-bearing for
// reproducible quotes and must not be reordered.
package optimize

import (
	"sort"

	"wireless-quote/core/condition"
	"wireless-quote/core/types"
)

// Result is the outcome of an optimization run
type Result struct {
	// Config is a fresh config with promotions attached; the caller's
	// config is never mutated
	Config types.QuoteConfig `json:"config"`

	// ChangesMade counts devices whose promotion attachment changed
	ChangesMade int `json:"changes_made"`
}

// Optimize attaches the best available device promotions to a working copy
// of the config and reports how many device attachments changed. Running it
// again on its own output is a no-op.
func Optimize(cfg types.QuoteConfig, promos []types.Promotion, models []types.DeviceModel) Result {
	work := cfg.Clone()
	consumed := make(map[int]bool, len(work.Devices))
	changes := 0

	// Pass 1: BOGO set matching, in promotion catalog order. Devices
	// consumed by one promotion's sets are off the table for later ones.
	for pi := range promos {
		promo := &promos[pi]
		if !bogoCandidate(promo) {
			continue
		}
		if !conditionsPass(work, promo) {
			continue
		}
		changes += matchBogoSets(&work, promo, models, consumed)
	}

	// Pass 2: best single-device promotion per remaining device, compared
	// against the rep-entered trade-in value.
	for di := range work.Devices {
		if consumed[di] {
			continue
		}
		dev := &work.Devices[di]
		manual := dev.ManualTradeIn()
		model := modelByID(models, dev.ModelID)

		var best *types.Promotion
		var bestValue float64
		for pi := range promos {
			promo := &promos[pi]
			if !singleCandidate(promo) {
				continue
			}
			if !promo.MatchesModel(model) {
				continue
			}
			if !conditionsPass(work, promo) {
				continue
			}
			if !tradeInSatisfied(promo, manual) {
				continue
			}
			if v := promo.FixedDeviceValue(); best == nil || v > bestValue {
				best = promo
				bestValue = v
			}
		}
		if best != nil && bestValue > manual {
			if attach(dev, best, bestValue) {
				changes++
			}
		}
	}

	return Result{Config: work, ChangesMade: changes}
}

// matchBogoSets builds the eligible pool for one BOGO promotion, sorts it
// cheapest first, and credits the i-th cheapest device of each set. The
// remaining buy-quantity-minus-one companions of each set are consumed from
// the expensive end of the pool, so no device is reused by a later set or a
// later promotion in this run.
func matchBogoSets(work *types.QuoteConfig, promo *types.Promotion, models []types.DeviceModel, consumed map[int]bool) int {
	pool := make([]int, 0, len(work.Devices))
	for di := range work.Devices {
		if consumed[di] {
			continue
		}
		if !promo.MatchesModel(modelByID(models, work.Devices[di].ModelID)) {
			continue
		}
		pool = append(pool, di)
	}

	sort.SliceStable(pool, func(a, b int) bool {
		return work.Devices[pool[a]].Price < work.Devices[pool[b]].Price
	})

	buy := promo.Bogo.BuyQuantity
	sets := len(pool) / buy
	value := promo.FixedDeviceValue()
	changes := 0
	tail := len(pool) - 1

	for i := 0; i < sets; i++ {
		getIdx := pool[i]
		get := &work.Devices[getIdx]
		if value > get.ManualTradeIn() {
			if attach(get, promo, value) {
				changes++
			}
		}
		consumed[getIdx] = true
		for k := 0; k < buy-1; k++ {
			consumed[pool[tail]] = true
			tail--
		}
	}
	return changes
}

// attach credits a promotion to a device, substituting its fixed value for
// the trade-in. Reports whether the device's attachment actually changed.
func attach(dev *types.Device, promo *types.Promotion, value float64) bool {
	if dev.AppliedPromoID == promo.ID && dev.TradeInType == types.TradeInPromo && dev.TradeIn == value {
		return false
	}
	dev.AppliedPromoID = promo.ID
	dev.TradeInType = types.TradeInPromo
	dev.TradeIn = value
	return true
}

func bogoCandidate(p *types.Promotion) bool {
	return p.Active && p.Category == types.PromoDevice && p.Bogo != nil && p.Bogo.BuyQuantity >= 1
}

func singleCandidate(p *types.Promotion) bool {
	return p.Active && p.Category == types.PromoDevice && p.Bogo == nil
}

func conditionsPass(cfg types.QuoteConfig, p *types.Promotion) bool {
	for _, c := range p.Conditions {
		if !condition.Evaluate(cfg, c) {
			return false
		}
	}
	return true
}

func tradeInSatisfied(p *types.Promotion, manual float64) bool {
	if p.DeviceRequirements == nil {
		return true
	}
	switch p.DeviceRequirements.TradeIn {
	case types.TradeInRequired:
		return manual > 0
	case types.TradeInNotAllowed:
		return manual == 0
	}
	return true
}

func modelByID(models []types.DeviceModel, id string) *types.DeviceModel {
	if id == "" {
		return nil
	}
	for i := range models {
		if models[i].ID == id {
			return &models[i]
		}
	}
	return nil
}
