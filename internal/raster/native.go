package raster

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// fallbackSize is used when neither the target size nor the viewBox give a dimension.
const fallbackSize = 64

// Native rasterizes in-process with oksvg. It needs no external tool but
// only supports the SVG subset oksvg understands.
type Native struct{}

// Rasterize renders src into a transparent PNG at dst.
//
// Zero dimensions are taken from the viewBox; when only one dimension is
// given the other keeps the icon's aspect ratio.
func (Native) Rasterize(src, dst string, size Size) error {
	// #nosec G304 - src comes from the input directory
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open svg: %w", err)
	}
	defer in.Close()

	icon, err := oksvg.ReadIconStream(in)
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}

	w, h := targetDimensions(icon.ViewBox.W, icon.ViewBox.H, size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(out, canvas); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return out.Close()
}

func targetDimensions(viewW, viewH float64, size Size) (int, int) {
	intrW := int(math.Ceil(viewW))
	intrH := int(math.Ceil(viewH))
	if intrW <= 0 {
		intrW = fallbackSize
	}
	if intrH <= 0 {
		intrH = fallbackSize
	}

	w, h := size.Width, size.Height
	switch {
	case w <= 0 && h <= 0:
		w, h = intrW, intrH
	case h <= 0:
		h = int(math.Round(float64(w) * float64(intrH) / float64(intrW)))
	case w <= 0:
		w = int(math.Round(float64(h) * float64(intrW) / float64(intrH)))
	}

	return max(w, 1), max(h, 1)
}
