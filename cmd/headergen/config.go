package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/yacobolo/headergen"
	"github.com/yacobolo/headergen/internal/raster"
	"github.com/yacobolo/headergen/internal/stylesheet"
)

const defaultConfigPath = ".headergen.yaml"

// noPrefix disables the property prefix, since an empty value means "unset".
const noPrefix = "none"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (HEADERGEN_* prefix)
	if err := k.Load(env.Provider("HEADERGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps variable names to config keys:
// HEADERGEN_GENERATE_INPUT_DIR -> generate.input-dir, HEADERGEN_VERBOSE -> verbose.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "HEADERGEN_"))
	section, rest, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig(log *zap.Logger) headergen.Config {
	config := headergen.Config{
		InputDir:       getStringWithFallback("input-dir", "generate.input-dir", ""),
		OutputDir:      getStringWithFallback("output-dir", "generate.output-dir", headergen.DefaultOutputDir),
		ScaleWidth:     getIntWithFallback("scale-width", "generate.scale-width", 0),
		ScaleHeight:    getIntWithFallback("scale-height", "generate.scale-height", 0),
		Backend:        getStringWithFallback("rasterizer", "generate.rasterizer", headergen.BackendExec),
		Tool:           getStringWithFallback("tool", "generate.tool", raster.DefaultTool),
		PropertyPrefix: getStringWithFallback("property-prefix", "generate.property-prefix", stylesheet.DefaultPropertyPrefix),
		Logger:         log,
	}

	if config.PropertyPrefix == noPrefix {
		config.PropertyPrefix = ""
	}

	// Handle ignores: check flag key first, then config key
	if patterns := k.Strings("ignore"); len(patterns) > 0 {
		config.Ignore = patterns
	} else if patterns := k.Strings("generate.ignore"); len(patterns) > 0 {
		config.Ignore = patterns
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
