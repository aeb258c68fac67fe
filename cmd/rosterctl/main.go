// Package main is the entry point for rosterctl, a command-line view of the roster filter.
package main

import (
	"os"

	"github.com/preston-bernstein/roster-filter-service/cmd/rosterctl/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
