package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/headergen/internal/report"
	"github.com/yacobolo/headergen/internal/stylesheet"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <stylesheet.css>",
	Short: "List the rules of a generated stylesheet",
	Long: `Parse a generated stylesheet and print its selectors.
Rules embedding a PNG show the decoded image size.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	inspectCmd.Flags().String("format", string(report.FormatText), "Output format: text|json")
}

func runInspect(path string) error {
	format, err := report.ParseFormat(getStringWithFallback("format", "inspect.format", string(report.FormatText)))
	if err != nil {
		return err
	}

	// #nosec G304 - path is given by the user
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening stylesheet: %w", err)
	}
	defer f.Close()

	summary, err := stylesheet.Inspect(f)
	if err != nil {
		return err
	}

	if format == report.FormatJSON {
		return report.WriteSummaryJSON(os.Stdout, version, summary)
	}

	color := getBoolWithFallback("color", "color", false)
	report.NewReporter(os.Stdout, color, false).PrintSummary(path, summary)
	return nil
}
