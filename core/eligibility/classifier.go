// Package eligibility classifies promotions against a quote config.
// A promotion is eligible when every condition passes, locked when it is a
// near-miss the rep could unlock by changing the config, and hidden when it
// is irrelevant to the customer (inactive, or wrong customer segment).
package eligibility

import (
	"fmt"
	"sort"

	"wireless-quote/core/condition"
	"wireless-quote/core/types"
)

// Status is the eligibility state of a promotion for a given config
type Status string

const (
	// StatusEligible means every condition passes
	StatusEligible Status = "ELIGIBLE"

	// StatusLocked means at least one condition fails but could be met
	StatusLocked Status = "LOCKED"

	// StatusHidden means the promotion is irrelevant to this customer
	StatusHidden Status = "HIDDEN"
)

// Classification is the result of classifying one promotion
type Classification struct {
	// PromotionID identifies the classified promotion
	PromotionID string `json:"promotion_id"`

	// Status is the eligibility state
	Status Status `json:"status"`

	// Reasons lists human-readable near-miss reasons for locked promotions
	Reasons []string `json:"reasons,omitempty"`
}

// Classify evaluates one promotion against a config. A failing customer-type
// condition hides the promotion outright: segment mismatch is a filter, not a
// near-miss. Every other failing condition contributes a reason and does not
// short-circuit, so all reasons are collected.
func Classify(cfg types.QuoteConfig, promo types.Promotion) Classification {
	result := Classification{PromotionID: promo.ID}

	if !promo.Active {
		result.Status = StatusHidden
		return result
	}

	for _, cond := range promo.Conditions {
		if condition.Evaluate(cfg, cond) {
			continue
		}
		if cond.Field == types.FieldCustomerType {
			result.Status = StatusHidden
			result.Reasons = nil
			return result
		}
		result.Reasons = append(result.Reasons, missReason(cond))
	}

	if len(result.Reasons) > 0 {
		result.Status = StatusLocked
	} else {
		result.Status = StatusEligible
	}
	return result
}

// ClassifyAll classifies every promotion in catalog order, then sorts the
// results eligible-first (eligible, locked, hidden) preserving catalog order
// within each status.
func ClassifyAll(cfg types.QuoteConfig, promos []types.Promotion) []Classification {
	results := make([]Classification, 0, len(promos))
	for _, p := range promos {
		results = append(results, Classify(cfg, p))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return statusRank(results[i].Status) < statusRank(results[j].Status)
	})
	return results
}

func statusRank(s Status) int {
	switch s {
	case StatusEligible:
		return 0
	case StatusLocked:
		return 1
	default:
		return 2
	}
}

// missReason maps a failing condition to a rep-facing near-miss message
func missReason(cond types.Condition) string {
	switch cond.Field {
	case types.FieldPlan:
		return "Upgrade plan to unlock"
	case types.FieldLines:
		if cond.Operator == types.OpGTE {
			return fmt.Sprintf("Add lines to unlock (needs %v)", cond.Value)
		}
		return "Line requirement not met"
	case types.FieldDeviceCount:
		return "Device count requirement not met"
	}
	return "Requirements not met"
}
