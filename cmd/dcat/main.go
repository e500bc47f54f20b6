// Package main is the entry point for the dcat CLI client.
package main

import (
	"github.com/donaldgifford/dealer-catalog/cmd/dcat/cmd"
)

func main() {
	cmd.Execute()
}
