// ABOUTME: Entry point for gtm-planner CLI
// ABOUTME: Command-line tool for GTM headcount planning and the HTTP API

package main

import (
	"fmt"
	"os"

	"github.com/markalston/gtm-planner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
