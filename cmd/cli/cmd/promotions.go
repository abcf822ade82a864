// Package cmd - promotions command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"wireless-quote/core/engine"
	"wireless-quote/core/output"
	"wireless-quote/internal/logging"
)

var promotionsFormat string

// promotionsCmd represents the promotions command
var promotionsCmd = &cobra.Command{
	Use:   "promotions <quote.json>",
	Short: "Classify catalog promotions against a quote",
	Long: `List every catalog promotion classified for the given quote:
eligible promotions first, then near-miss ("locked") promotions with the
configuration changes that would unlock them, then hidden ones.

Examples:
  wireless-quote promotions quote.json
  wireless-quote promotions --format json quote.json`,
	Args: cobra.ExactArgs(1),
	RunE: runPromotions,
}

func init() {
	promotionsCmd.Flags().StringVarP(&promotionsFormat, "format", "f", "cli", "output format (cli, json)")
}

func runPromotions(cmd *cobra.Command, args []string) error {
	cfg, err := loadQuote(args[0])
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	eng := engine.New(cat, logging.Logger)
	result := &output.QuoteResult{
		Config:          cfg,
		Totals:          eng.Calculate(cfg),
		Classifications: eng.ClassifyPromotions(cfg),
	}

	formatter := output.New(output.Format(promotionsFormat), noColor)
	return formatter.Render(os.Stdout, result)
}
