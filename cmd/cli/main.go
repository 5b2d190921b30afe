// Package main is the entry point for the quotectl admin CLI.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"hometheater_quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
