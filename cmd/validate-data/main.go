// Command validate-data checks the bundled catalog for integrity and
// functional regressions after a dataset edit.
//
// Usage:
//
//	go run ./cmd/validate-data
//
// It loads the embedded data, re-runs the catalog invariants, and resolves
// a set of known queries. Exits non-zero on the first failure.
package main

import (
	"fmt"
	"os"

	"github.com/cruisedot/navplace"
)

func main() {
	fmt.Println("Validating bundled navplace data...")

	if err := navplace.ValidateData(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Data validated successfully.")
}
