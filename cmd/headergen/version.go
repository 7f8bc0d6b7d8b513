package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/headergen
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of headergen",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("headergen %s\n", version)
	},
}
