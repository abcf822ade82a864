// Package cmd - new command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wireless-quote/core/types"
	"wireless-quote/internal/config"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <quote.json>",
	Short: "Create a starter quote configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}

	defaults := config.Get().Defaults
	cfg := types.NewQuoteConfig()
	cfg.CustomerType = defaults.CustomerType
	cfg.Plan = defaults.Plan
	cfg.TaxRate = defaults.TaxRate

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
