package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/wordindex/pkg/cli"
)

func main() {
	var app cli.CLI
	ctx := kong.Parse(&app, cli.Options("/etc/wordindex.json", "~/.wordindex.json")...)
	if err := app.Execute(ctx, os.Stdout, os.Stderr); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
