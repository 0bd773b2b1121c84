// Package main provides the CLI entrypoint for xcm-generator.
//
// xcm-generator emits the literal-shape conversions of the addressing types
// and is meant to run from //go:generate:
//   - location: conversions into Location
//   - junctions: tuple conversions into Junctions and the v4 migration
//   - all: both of the above
//   - check: verify a package declares what the conversions refer to
package main

import (
	"errors"
	"fmt"
	"os"

	"xcm-generator/internal/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xcm-generator:", err)

		if errors.Is(err, gen.ErrUsage) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
