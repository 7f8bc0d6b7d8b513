package headergen

import (
	"go.uber.org/zap"

	"github.com/yacobolo/headergen/internal/raster"
)

// Rasterizer backends
const (
	BackendExec   = "exec"   // external svgexport-compatible command
	BackendNative = "native" // in-process oksvg renderer
)

// DefaultOutputDir is where stylesheets land unless configured otherwise.
const DefaultOutputDir = "../resources/atlantafx/decorations/theme"

// ScratchDirName is the directory created inside the input directory for rasterized icons.
const ScratchDirName = "tmp"

// Config holds generator configuration
type Config struct {
	InputDir       string   // directory with metadata.cfg and the SVG icons
	OutputDir      string   // stylesheet directory (default: DefaultOutputDir)
	ScaleWidth     int      // PNG width override, 0 = metadata ButtonWidth
	ScaleHeight    int      // PNG height override, 0 = metadata ButtonHeight
	Backend        string   // "exec" or "native" (default: exec)
	Tool           string   // executable for the exec backend (default: svgexport)
	PropertyPrefix string   // CSS property prefix, the CLI uses "-fx-" (JavaFX)
	Ignore         []string // gitignore-style patterns of SVG files to skip
	Logger         *zap.Logger

	rasterizer raster.Rasterizer // overrides Backend in tests
}

// Rule is an image rule written to the stylesheet.
type Rule struct {
	File     string `json:"file"`
	Selector string `json:"selector"`
	Bytes    int    `json:"bytes"`
}

// SkippedVariant is an icon that was rasterized but left out of the stylesheet.
type SkippedVariant struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// GenerateResult contains generation stats
type GenerateResult struct {
	Theme           string           `json:"theme"`
	OutputPath      string           `json:"output_path"`
	Width           int              `json:"width"`
	Height          int              `json:"height"`
	IconsFound      int              `json:"icons_found"`
	IconsIgnored    int              `json:"icons_ignored"`
	IconsRasterized int              `json:"icons_rasterized"`
	Rules           []Rule           `json:"rules"`
	Skipped         []SkippedVariant `json:"skipped"`
}
