package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "headergen",
	Short: "Header button stylesheet generator",
	Long: `Rasterize window header button icons and embed them into a stylesheet.
Each <button>[-state]*.svg in the input directory becomes one CSS rule
with the rendered PNG inlined as a data URI.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	// Generation flags are accepted without the subcommand too: headergen -i icons
	addGenerateFlags(rootCmd.Flags())

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// shortAliases are the two-letter single-dash flags kept for existing build scripts.
// pflag only supports single-letter shorthands, so they are rewritten before parsing.
var shortAliases = map[string]string{
	"-sw": "--scale-width",
	"-sh": "--scale-height",
}

// normalizeArgs rewrites -sw/-sh (also in -sw=N form) to their long names.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = arg
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := shortAliases[name]; ok {
			if hasValue {
				out[i] = long + "=" + value
			} else {
				out[i] = long
			}
		}
	}
	return out
}
