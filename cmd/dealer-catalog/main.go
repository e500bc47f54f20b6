// Package main is the entry point for the dealer-catalog server.
package main

import (
	"os"

	"github.com/donaldgifford/dealer-catalog/cmd/dealer-catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
