// Package main provides the headergen CLI tool for generating header button stylesheets.
package main

import (
	"os"

	"github.com/yacobolo/headergen/internal/report"
)

func main() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		color := getBoolWithFallback("color", "color", false)
		report.NewReporter(os.Stdout, color, false).PrintError(err)
		os.Exit(1)
	}
}
