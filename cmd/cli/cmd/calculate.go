// Package cmd - calculate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wireless-quote/core/engine"
	"wireless-quote/core/output"
	"wireless-quote/core/types"
	"wireless-quote/internal/logging"
)

var outputFormat string

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate <quote.json>",
	Short: "Calculate the cost breakdown for a quote configuration",
	Long: `Compute the complete monthly and due-today breakdown for a quote.

The quote file is a JSON document describing the customer configuration:
plan, line count, devices, accessories, discounts, and tax rate.

Examples:
  wireless-quote calculate quote.json
  wireless-quote calculate --format json quote.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
}

func runCalculate(cmd *cobra.Command, args []string) error {
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
		Config: cfg,
		Totals: eng.Calculate(cfg),
	}

	formatter := output.New(output.Format(outputFormat), noColor)
	return formatter.Render(os.Stdout, result)
}

// loadQuote reads a quote configuration from a JSON file
func loadQuote(path string) (types.QuoteConfig, error) {
	cfg := types.NewQuoteConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read quote file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse quote file: %w", err)
	}
	return cfg, nil
}
