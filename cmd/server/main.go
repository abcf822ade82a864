package main

import (
	"flag"
	"fmt"
	"os"

	"wireless-quote/api"
	"wireless-quote/catalog"
	"wireless-quote/core/engine"
	"wireless-quote/core/types"
	"wireless-quote/internal/config"
	"wireless-quote/internal/logging"
)

const version = "0.1.0"

func main() {
	defer logging.Sync()

	cfgPath := flag.String("config", "", "config file path")
	listen := flag.String("listen", "", "listen address (overrides config)")
	catalogDir := flag.String("catalog", "", "catalog directory (overrides config)")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}

	dir := *catalogDir
	if dir == "" {
		dir = cfg.CatalogDir
	}
	cat, err := loadCatalog(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	addr := *listen
	if addr == "" {
		addr = cfg.Server.Listen
	}

	eng := engine.New(cat, logging.Logger)
	server := api.NewServer(eng, version, logging.Logger)
	if err := server.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// loadCatalog falls back to the built-in demo catalog when the configured
// directory does not exist
func loadCatalog(dir string) (*types.Catalog, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return catalog.Default(), nil
	}
	return catalog.Load(dir)
}
