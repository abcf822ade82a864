// Package condition provides the declarative condition evaluator.
// Every other promotion component depends on this behaving identically for
// every operator/field combination, so all failure modes degrade to false:
// a malformed condition never panics and never passes.
package condition

import (
	"strconv"
	"strings"

	"wireless-quote/core/types"
)

// accessor resolves one condition field against a config snapshot
type accessor func(cfg *types.QuoteConfig) interface{}

// fields is the closed set of resolvable condition fields. Unknown fields
// resolve to nothing and the condition evaluates false.
var fields = map[string]accessor{
	types.FieldCustomerType: func(cfg *types.QuoteConfig) interface{} { return string(cfg.CustomerType) },
	types.FieldPlan:         func(cfg *types.QuoteConfig) interface{} { return cfg.Plan },
	types.FieldLines:        func(cfg *types.QuoteConfig) interface{} { return cfg.Lines },
	types.FieldTaxRate:      func(cfg *types.QuoteConfig) interface{} { return cfg.TaxRate },
	types.FieldDeviceCount: func(cfg *types.QuoteConfig) interface{} {
		return len(cfg.Devices)
	},
	types.FieldAccessoryCount: func(cfg *types.QuoteConfig) interface{} {
		return len(cfg.Accessories)
	},
	types.FieldAutopay:       func(cfg *types.QuoteConfig) interface{} { return cfg.Discounts.Autopay },
	types.FieldInsider:       func(cfg *types.QuoteConfig) interface{} { return cfg.Discounts.Insider },
	types.FieldThirdLineFree: func(cfg *types.QuoteConfig) interface{} { return cfg.Discounts.ThirdLineFree },
}

// Evaluate tests a single condition against a config. It is total: an
// unresolvable field, unknown operator, or malformed literal yields false.
func Evaluate(cfg types.QuoteConfig, cond types.Condition) bool {
	acc, ok := fields[cond.Field]
	if !ok {
		return false
	}
	got := acc(&cfg)

	switch cond.Operator {
	case types.OpEquals:
		return looseEqual(got, cond.Value)
	case types.OpNotEquals:
		return !looseEqual(got, cond.Value)
	case types.OpGTE:
		a, aok := toNumber(got)
		b, bok := toNumber(cond.Value)
		return aok && bok && a >= b
	case types.OpLTE:
		a, aok := toNumber(got)
		b, bok := toNumber(cond.Value)
		return aok && bok && a <= b
	case types.OpIncludes:
		return includes(got, cond.Value)
	}
	return false
}

// looseEqual compares with numeric coercion: when either side is numeric
// (or parses as a number) both sides are compared as numbers, otherwise as
// strings.
func looseEqual(got, want interface{}) bool {
	if isNumeric(got) || parsesAsNumber(want) {
		a, aok := toNumber(got)
		b, bok := toNumber(want)
		if aok && bok {
			return a == b
		}
	}
	return stringify(got) == stringify(want)
}

// includes tests membership. A comma-separated string literal is split into
// candidates; a list literal is tested element-wise. Any other literal form
// is malformed and fails.
func includes(got, want interface{}) bool {
	switch lit := want.(type) {
	case string:
		g := stringify(got)
		for _, part := range strings.Split(lit, ",") {
			if strings.TrimSpace(part) == g {
				return true
			}
		}
	case []interface{}:
		for _, elem := range lit {
			if looseEqual(got, elem) {
				return true
			}
		}
	case []string:
		for _, elem := range lit {
			if looseEqual(got, elem) {
				return true
			}
		}
	}
	return false
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

func parsesAsNumber(v interface{}) bool {
	_, ok := toNumber(v)
	return ok
}

func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func stringify(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}
