// Package report prints generation and inspection results for the CLI.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/headergen"
	"github.com/yacobolo/headergen/internal/stylesheet"
)

// Format selects how results are printed.
type Format string

const (
	// FormatText is the human readable summary (default)
	FormatText Format = "text"
	// FormatJSON is machine readable output for tooling
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format, defaulting to text.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text or json)", s)
	}
}

// Reporter handles formatting and outputting results
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// NewReporter creates a new reporter
func NewReporter(w io.Writer, forceColor, verbose bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(forceColor),
		verbose:   verbose,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintResult outputs the generation summary
func (r *Reporter) PrintResult(result *headergen.GenerateResult) {
	fmt.Fprintf(r.w, "%s %s\n",
		r.paint(roleSuccess, "Generated"),
		r.paint(rolePath, result.OutputPath))
	fmt.Fprintf(r.w, "  Theme:            %s\n", result.Theme)
	fmt.Fprintf(r.w, "  Button size:      %d:%d\n", result.Width, result.Height)
	fmt.Fprintf(r.w, "  Icons found:      %d\n", result.IconsFound)
	fmt.Fprintf(r.w, "  Icons rasterized: %d\n", result.IconsRasterized)
	fmt.Fprintf(r.w, "  Image rules:      %d\n", len(result.Rules))

	if r.verbose {
		for _, rule := range result.Rules {
			fmt.Fprintf(r.w, "    %s %s\n", rule.File, r.paint(roleSelector, "→ "+rule.Selector))
		}
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintf(r.w, "  %s\n", r.paint(roleNotice, fmt.Sprintf("Skipped: %d", len(result.Skipped))))
		for _, s := range result.Skipped {
			fmt.Fprintf(r.w, "    %s (%s)\n", s.File, s.Reason)
		}
	}

	if result.IconsIgnored > 0 {
		fmt.Fprintf(r.w, "  %s\n", r.paint(roleNotice, fmt.Sprintf("Ignored: %d", result.IconsIgnored)))
	}
}

// PrintSummary outputs the rules of an inspected stylesheet
func (r *Reporter) PrintSummary(path string, summary *stylesheet.Summary) {
	fmt.Fprintln(r.w, r.paint(rolePath, path))

	for _, rule := range summary.Rules {
		if rule.Image != nil {
			fmt.Fprintf(r.w, "  %s %s\n", rule.Selector, r.paint(roleSelector, fmt.Sprintf("(%d byte PNG)", len(rule.Image))))
			continue
		}
		fmt.Fprintf(r.w, "  %s %s\n", rule.Selector, r.paint(roleSelector, fmt.Sprintf("%v", rule.Properties)))
	}

	fmt.Fprintf(r.w, "\n%s\n", pluralizeCount(len(summary.ImageRules()), "image rule", "image rules"))
}

// PrintError outputs a failure the way every command reports it
func (r *Reporter) PrintError(err error) {
	fmt.Fprintf(r.w, "%s %s\n", r.paint(roleFailure, "An error occurred:"), err)
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
