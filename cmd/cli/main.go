package main

import (
	"os"

	"port-proforma/cmd/cli/cmd"
	"port-proforma/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
