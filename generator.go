package headergen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/headergen/internal/metadata"
	"github.com/yacobolo/headergen/internal/raster"
	"github.com/yacobolo/headergen/internal/stylesheet"
)

// ErrInputDir is returned when the input directory is missing or not a directory.
var ErrInputDir = errors.New("input directory doesn't exist")

// Generate is the main entry point
func Generate(config Config) (result *GenerateResult, err error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if info, statErr := os.Stat(config.InputDir); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: '%s'", ErrInputDir, config.InputDir)
	}

	// 1. Metadata
	md, err := metadata.Read(config.InputDir)
	if err != nil {
		return nil, err
	}
	log.Debug("Read metadata", zap.String("theme", md.Name()), zap.Int("keys", len(md)))

	// 2. Scratch directory, removed whatever happens below
	scratch := filepath.Join(config.InputDir, ScratchDirName)
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			err = multierr.Append(err, fmt.Errorf("removing scratch directory: %w", rmErr))
		}
		log.Debug("Removed scratch directory", zap.String("path", scratch))
	}()

	return generate(config, md, scratch, log)
}

func generate(config Config, md metadata.Metadata, scratch string, log *zap.Logger) (*GenerateResult, error) {
	result := &GenerateResult{Theme: md.Name()}

	// 3. Rasterize
	r, err := newRasterizer(config)
	if err != nil {
		return nil, err
	}

	size, err := raster.ResolveSize(raster.Size{Width: config.ScaleWidth, Height: config.ScaleHeight}, md)
	if err != nil {
		return nil, err
	}
	result.Width, result.Height = size.Width, size.Height

	files, ignored, err := scanSVGFiles(config.InputDir, config.Ignore)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.IconsFound = len(files) + len(ignored)
	result.IconsIgnored = len(ignored)
	for _, f := range ignored {
		log.Debug("Ignoring icon", zap.String("file", f))
	}

	pngs, err := raster.ConvertAll(r, files, scratch, size, log)
	if err != nil {
		return nil, err
	}
	result.IconsRasterized = len(pngs)

	// 4. Stylesheet
	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	result.OutputPath = filepath.Join(outputDir, md.Name()+".css")

	sheet, err := stylesheet.NewGenerator(config.PropertyPrefix, log).Write(result.OutputPath, md, scratch)
	if err != nil {
		return nil, err
	}

	for _, rule := range sheet.Rules {
		result.Rules = append(result.Rules, Rule{File: rule.File, Selector: rule.Selector, Bytes: rule.Bytes})
	}
	for _, s := range sheet.Skipped {
		result.Skipped = append(result.Skipped, SkippedVariant{File: s.File, Reason: s.Reason})
	}

	log.Info("Generated stylesheet",
		zap.String("path", result.OutputPath),
		zap.Int("rules", len(result.Rules)),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

func newRasterizer(config Config) (raster.Rasterizer, error) {
	if config.rasterizer != nil {
		return config.rasterizer, nil
	}

	switch config.Backend {
	case "", BackendExec:
		return raster.NewExec(config.Tool)
	case BackendNative:
		return raster.Native{}, nil
	default:
		return nil, fmt.Errorf("unknown rasterizer backend %q (expected %s or %s)", config.Backend, BackendExec, BackendNative)
	}
}
