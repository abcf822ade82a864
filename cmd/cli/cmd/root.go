// Package cmd provides the CLI commands for wireless-quote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wireless-quote/catalog"
	"wireless-quote/core/types"
	"wireless-quote/internal/config"
	"wireless-quote/internal/logging"
)

var (
	cfgFile    string
	catalogDir string
	verbose    bool
	noColor    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wireless-quote",
	Short: "Price wireless service quotes and optimize promotions",
	Long: `wireless-quote computes complete monthly and upfront cost breakdowns
for wireless service configurations and automatically selects which
promotional offers give the customer the maximum available discount.

Examples:
  wireless-quote calculate quote.json
  wireless-quote optimize quote.json
  wireless-quote promotions quote.json
  wireless-quote serve`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wireless-quote.json)")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog", "", "catalog directory (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(promotionsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog resolves the catalog: an explicit --catalog directory, then
// the configured directory, then the built-in demo catalog.
func loadCatalog() (*types.Catalog, error) {
	dir := catalogDir
	if dir == "" {
		dir = config.Get().CatalogDir
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(dir)
	if err != nil {
		return nil, err
	}
	if settings := config.Get().Discounts; settings != nil {
		cat.Discounts = *settings
	}
	return cat, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wireless-quote version " + Version)
	},
}

// Version is the CLI version string
const Version = "0.1.0"
