package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/headergen"
	"github.com/yacobolo/headergen/internal/raster"
	"github.com/yacobolo/headergen/internal/report"
	"github.com/yacobolo/headergen/internal/stylesheet"
)

var errInputDirRequired = errors.New("input directory is required (--input-dir)")

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a header button stylesheet from SVG icons",
	Long: `Rasterize every SVG in the input directory, embed the PNGs as data URIs
and write <output-dir>/<Name>.css, Name being taken from metadata.cfg.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd.Flags())
}

// addGenerateFlags registers the generation flags on f.
func addGenerateFlags(f *pflag.FlagSet) {
	f.StringP("input-dir", "i", "", "Input directory with metadata.cfg and SVG icons (required)")
	f.Int("scale-width", 0, "Width for PNG scaling, 0 uses ButtonWidth (alias -sw)")
	f.Int("scale-height", 0, "Height for PNG scaling, 0 uses ButtonHeight (alias -sh)")
	f.String("output-dir", headergen.DefaultOutputDir, "Directory the stylesheet is written to")
	f.String("rasterizer", headergen.BackendExec, "Rasterizer backend: exec|native")
	f.String("tool", raster.DefaultTool, "Rasterization command for the exec backend")
	f.String("property-prefix", stylesheet.DefaultPropertyPrefix, `CSS property prefix ("none" for plain CSS)`)
	f.StringSlice("ignore", nil, "Gitignore-style patterns of SVG files to skip")
	f.String("format", string(report.FormatText), "Report format: text|json")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)
	color := getBoolWithFallback("color", "color", false)

	format, err := report.ParseFormat(getStringWithFallback("format", "generate.format", string(report.FormatText)))
	if err != nil {
		return err
	}

	log := newLogger(verbose, quiet, color)
	defer func() { _ = log.Sync() }()

	config := buildGenerateConfig(log)
	if config.InputDir == "" {
		return errInputDirRequired
	}

	result, err := headergen.Generate(config)
	if err != nil {
		return err
	}

	if quiet {
		return nil
	}
	if format == report.FormatJSON {
		return report.WriteResultJSON(os.Stdout, version, result)
	}
	report.NewReporter(os.Stdout, color, verbose).PrintResult(result)
	return nil
}
