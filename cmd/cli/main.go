package main

import (
	"os"

	"wireless-quote/cmd/cli/cmd"
	"wireless-quote/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
