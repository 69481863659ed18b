package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/money_field/internal/cli"
	"github.com/SscSPs/money_field/internal/platform/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "moneyfmt: load config: %v\n", err)
		os.Exit(1)
	}
	if err := cli.Execute(cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "moneyfmt: %v\n", err)
		os.Exit(1)
	}
}
