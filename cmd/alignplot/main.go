// Package main provides the CLI entry point for alignplot.
package main

import (
	"fmt"
	"os"

	"github.com/ukaji3/alignplot-go/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
