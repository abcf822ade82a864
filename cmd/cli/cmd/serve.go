// Package cmd - serve command
package cmd

import (
	"github.com/spf13/cobra"

	"wireless-quote/api"
	"wireless-quote/core/engine"
	"wireless-quote/internal/config"
	"wireless-quote/internal/logging"
)

var listenAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quote API server",
	Long: `Start the HTTP API exposing the quote engine:

  POST /calculate            full cost breakdown for a config
  POST /optimize             promotion optimization
  POST /promotions/classify  eligibility classification
  POST /promotions/apply     manual promotion application
  POST /quote-versions       immutable config+totals snapshot`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	addr := listenAddr
	if addr == "" {
		addr = config.Get().Server.Listen
	}

	eng := engine.New(cat, logging.Logger)
	server := api.NewServer(eng, Version, logging.Logger)
	return server.ListenAndServe(addr)
}
