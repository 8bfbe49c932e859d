package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/soonlabs/binance-api-key-audit/pkg/runtime/terminal"
)

func main() {
	// Optional; credentials may come from a local .env during development.
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
