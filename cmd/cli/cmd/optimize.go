// Package cmd - optimize command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wireless-quote/core/engine"
	"wireless-quote/core/output"
	"wireless-quote/internal/logging"
)

var (
	optimizeFormat string
	writeBack      bool
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize <quote.json>",
	Short: "Attach the best available promotions to a quote's devices",
	Long: `Run promotion optimization over a quote configuration.

BOGO promotions are matched first in catalog order, then each remaining
device gets the single best promotion whose value beats its manual
trade-in. The optimized breakdown is printed; --write saves the optimized
configuration back to the quote file.

Examples:
  wireless-quote optimize quote.json
  wireless-quote optimize --write quote.json`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeFormat, "format", "f", "cli", "output format (cli, json)")
	optimizeCmd.Flags().BoolVarP(&writeBack, "write", "w", false, "write the optimized config back to the quote file")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadQuote(args[0])
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	eng := engine.New(cat, logging.Logger)
	result := eng.Optimize(cfg)

	fmt.Fprintf(os.Stderr, "Optimization made %d change(s)\n", result.ChangesMade)

	if writeBack {
		data, err := json.MarshalIndent(result.Config, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			return fmt.Errorf("failed to write quote file: %w", err)
		}
	}

	quoteResult := &output.QuoteResult{
		Config: result.Config,
		Totals: eng.Calculate(result.Config),
	}
	formatter := output.New(output.Format(optimizeFormat), noColor)
	return formatter.Render(os.Stdout, quoteResult)
}
