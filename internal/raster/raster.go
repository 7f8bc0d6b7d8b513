// Package raster converts SVG icons to PNG images.
package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"github.com/yacobolo/headergen/internal/metadata"
)

// Size is the target PNG size. A zero dimension lets the backend decide.
type Size struct {
	Width  int
	Height int
}

// String renders the size the way svgexport expects it: "<width>:<height>".
func (s Size) String() string {
	return fmt.Sprintf("%d:%d", s.Width, s.Height)
}

// Rasterizer converts a single SVG file into a PNG file.
type Rasterizer interface {
	Rasterize(src, dst string, size Size) error
}

// ResolveSize picks the target size for every dimension independently:
// a non-zero override wins, then the metadata button size, then 0.
func ResolveSize(override Size, md metadata.Metadata) (Size, error) {
	size := override

	if size.Width == 0 {
		w, err := md.Int(metadata.KeyButtonWidth)
		if err != nil {
			return Size{}, err
		}
		size.Width = w
	}

	if size.Height == 0 {
		h, err := md.Int(metadata.KeyButtonHeight)
		if err != nil {
			return Size{}, err
		}
		size.Height = h
	}

	return size, nil
}

// PNGPath returns the scratch location for the PNG rendered from svg.
func PNGPath(scratchDir, svg string) string {
	base := strings.TrimSuffix(filepath.Base(svg), filepath.Ext(svg))
	return filepath.Join(scratchDir, base+".png")
}

// ConvertAll rasterizes files into scratchDir in the given order.
// It stops at the first failure and returns the produced PNG paths otherwise.
func ConvertAll(r Rasterizer, files []string, scratchDir string, size Size, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("raster")

	pngs := make([]string, 0, len(files))
	for _, svg := range files {
		png := PNGPath(scratchDir, svg)

		log.Debug("Rasterizing", zap.String("src", svg), zap.String("dst", png), zap.Stringer("size", size))
		if err := r.Rasterize(svg, png, size); err != nil {
			return nil, fmt.Errorf("converting %s to PNG: %w", svg, err)
		}
		if err := verifyPNG(png); err != nil {
			return nil, fmt.Errorf("converting %s to PNG: %w", svg, err)
		}

		pngs = append(pngs, png)
	}

	return pngs, nil
}

// verifyPNG checks that the rasterizer actually left a PNG behind.
func verifyPNG(path string) error {
	// #nosec G304 - path is inside the scratch directory
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading output: %w", err)
	}

	if !filetype.Is(data, "png") {
		return fmt.Errorf("%w: %s", ErrNotPNG, path)
	}
	return nil
}
