// Package headergen generates window header button stylesheets from SVG icons.
//
// An input directory holds one SVG per button variant plus a metadata.cfg
// file describing the button geometry:
//
//	icons/
//	  metadata.cfg          Name=win11, ButtonWidth=46, ButtonHeight=32, ...
//	  close.svg
//	  close-hover.svg
//	  restore-inactive.svg
//
// Icon names follow <button>[-state]*, where the button is minimize, maximize,
// close or restore and states are hover, pressed, deactivated or inactive,
// separated by '-' or '_'.
//
// # Generation
//
//	result, err := headergen.Generate(headergen.Config{
//		InputDir:  "icons",
//		OutputDir: "theme",
//	})
//
// Every SVG is rasterized to PNG (svgexport by default), embedded as a base64
// data URI and written to <OutputDir>/<Name>.css. Pressed variants are not
// emitted. The scratch directory used for the PNGs is removed on every exit
// path.
//
// # CLI Tool
//
//	go install github.com/yacobolo/headergen/cmd/headergen@latest
//	headergen -i icons -sw 92 -sh 64
package headergen
