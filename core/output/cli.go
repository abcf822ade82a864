// Package output - Terminal renderer
package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"wireless-quote/core/eligibility"
)

// ANSI colors for terminal output
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// cliFormatter renders a human-readable terminal breakdown
type cliFormatter struct {
	noColor bool
}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) color(code, s string) string {
	if f.noColor {
		return s
	}
	return code + s + reset
}

func (f *cliFormatter) Render(w io.Writer, result *QuoteResult) error {
	t := result.Totals
	cfg := result.Config

	fmt.Fprintf(w, "%s\n", f.color(bold, "Quote Summary"))
	fmt.Fprintf(w, "  Plan: %s  Lines: %d  Customer: %s\n\n", cfg.Plan, cfg.Lines, cfg.CustomerType)

	f.line(w, "Base plan price", t.BasePlanPrice, "")
	f.discount(w, "AutoPay discount", t.AutopayDiscount)
	f.discount(w, "Insider discount", t.InsiderDiscount)
	f.discount(w, "Third line free", t.ThirdLineFreeDiscount)
	f.line(w, "Final plan price", t.FinalPlanPrice, bold)

	fmt.Fprintln(w)
	f.line(w, "Insurance", t.InsuranceCost, "")
	f.line(w, "Device payments (24 mo)", t.MonthlyDevicePayment, "")
	if !t.ServicePlanCost.IsZero() {
		f.line(w, "Service plans", t.ServicePlanCost, "")
	}
	if !t.AccessoryMonthly.IsZero() {
		f.line(w, "Accessories (financed)", t.AccessoryMonthly, "")
	}
	f.line(w, "Taxes (monthly)", t.CalculatedTaxes, "")

	fmt.Fprintln(w)
	f.line(w, "Monthly total", t.MonthlyTotal, bold+green)
	f.line(w, "Due today", t.DueToday, bold+yellow)
	if !t.AccessoryUpfront.IsZero() {
		f.line(w, "Accessories (upfront)", t.AccessoryUpfront, "")
	}

	if len(t.AppliedPromotions) > 0 {
		fmt.Fprintf(w, "\n%s\n", f.color(bold, "Applied Promotions"))
		for _, ap := range t.AppliedPromotions {
			name := ap.Name
			if name == "" {
				name = ap.PromotionID
			}
			fmt.Fprintf(w, "  %s %s ($%s)\n", f.color(green, "*"), name, ap.Value.StringFixed(2))
		}
	}

	if len(result.Classifications) > 0 {
		fmt.Fprintf(w, "\n%s\n", f.color(bold, "Promotions"))
		for _, c := range result.Classifications {
			f.classification(w, c)
		}
	}
	return nil
}

func (f *cliFormatter) line(w io.Writer, label string, amount decimal.Decimal, code string) {
	value := fmt.Sprintf("$%s", amount.StringFixed(2))
	if code != "" {
		value = f.color(code, value)
	}
	fmt.Fprintf(w, "  %-26s %s\n", label, value)
}

func (f *cliFormatter) discount(w io.Writer, label string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	fmt.Fprintf(w, "  %-26s %s\n", label, f.color(green, fmt.Sprintf("-$%s", amount.StringFixed(2))))
}

func (f *cliFormatter) classification(w io.Writer, c eligibility.Classification) {
	switch c.Status {
	case eligibility.StatusEligible:
		fmt.Fprintf(w, "  %s %s\n", f.color(green, "[eligible]"), c.PromotionID)
	case eligibility.StatusLocked:
		fmt.Fprintf(w, "  %s %s\n", f.color(yellow, "[locked]  "), c.PromotionID)
		for _, r := range c.Reasons {
			fmt.Fprintf(w, "      %s\n", f.color(dim, r))
		}
	default:
		fmt.Fprintf(w, "  %s %s\n", f.color(dim, "[hidden]  "), c.PromotionID)
	}
}
