package raster

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/headergen/internal/metadata"
)

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10" width="20" height="10">
<rect x="0" y="0" width="20" height="10" fill="#ff0000"/>
</svg>`

// fakeRasterizer records calls and writes a real PNG for each of them.
type fakeRasterizer struct {
	calls  []string
	sizes  []Size
	failOn string
}

func (f *fakeRasterizer) Rasterize(src, dst string, size Size) error {
	f.calls = append(f.calls, filepath.Base(src))
	f.sizes = append(f.sizes, size)
	if filepath.Base(src) == f.failOn {
		return &ToolError{Tool: "fake", ExitCode: 1, Diagnostic: "broken svg"}
	}
	return Native{}.Rasterize(src, dst, Size{Width: 4, Height: 4})
}

func writeSVGs(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(squareSVG), 0644))
		paths = append(paths, p)
	}
	return paths
}

func TestSizeString(t *testing.T) {
	assert.Equal(t, "46:32", Size{Width: 46, Height: 32}.String())
	assert.Equal(t, "0:0", Size{}.String())
}

func TestResolveSize(t *testing.T) {
	md := metadata.Metadata{"ButtonWidth": "46", "ButtonHeight": "32"}

	tests := []struct {
		name     string
		override Size
		md       metadata.Metadata
		expected Size
	}{
		{
			name:     "zero override uses metadata",
			override: Size{},
			md:       md,
			expected: Size{Width: 46, Height: 32},
		},
		{
			name:     "override wins over metadata",
			override: Size{Width: 92, Height: 64},
			md:       md,
			expected: Size{Width: 92, Height: 64},
		},
		{
			name:     "dimensions resolve independently",
			override: Size{Width: 100},
			md:       md,
			expected: Size{Width: 100, Height: 32},
		},
		{
			name:     "missing metadata falls back to zero",
			override: Size{},
			md:       metadata.Metadata{},
			expected: Size{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSize(tt.override, tt.md)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveSize_InvalidMetadata(t *testing.T) {
	_, err := ResolveSize(Size{}, metadata.Metadata{"ButtonWidth": "wide"})
	require.Error(t, err)

	// Override makes the bad value irrelevant
	got, err := ResolveSize(Size{Width: 5, Height: 5}, metadata.Metadata{"ButtonWidth": "wide"})
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 5, Height: 5}, got)
}

func TestPNGPath(t *testing.T) {
	assert.Equal(t, filepath.Join("tmp", "close-hover.png"), PNGPath("tmp", filepath.Join("in", "close-hover.svg")))
}

func TestConvertAll(t *testing.T) {
	dir := t.TempDir()
	scratch := t.TempDir()
	files := writeSVGs(t, dir, "minimize.svg", "close.svg")

	fake := &fakeRasterizer{}
	pngs, err := ConvertAll(fake, files, scratch, Size{Width: 10, Height: 8}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"minimize.svg", "close.svg"}, fake.calls)
	assert.Equal(t, []Size{{10, 8}, {10, 8}}, fake.sizes)
	assert.Equal(t, []string{
		filepath.Join(scratch, "minimize.png"),
		filepath.Join(scratch, "close.png"),
	}, pngs)
}

func TestConvertAll_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	files := writeSVGs(t, dir, "minimize.svg", "close.svg", "maximize.svg")

	fake := &fakeRasterizer{failOn: "close.svg"}
	_, err := ConvertAll(fake, files, t.TempDir(), Size{}, nil)
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "broken svg", toolErr.Diagnostic)
	assert.Contains(t, err.Error(), "close.svg")
	assert.Equal(t, []string{"minimize.svg", "close.svg"}, fake.calls)
}

type garbageRasterizer struct{}

func (garbageRasterizer) Rasterize(_, dst string, _ Size) error {
	return os.WriteFile(dst, []byte("not an image"), 0644)
}

func TestConvertAll_RejectsNonPNGOutput(t *testing.T) {
	files := writeSVGs(t, t.TempDir(), "close.svg")

	_, err := ConvertAll(garbageRasterizer{}, files, t.TempDir(), Size{}, nil)
	assert.ErrorIs(t, err, ErrNotPNG)
}

func TestNewExec_ToolNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewExec("svgexport-does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.Equal(t, "svgexport-does-not-exist command is not found in the system PATH", err.Error())
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-svgexport")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}

func TestExec_PassesArguments(t *testing.T) {
	writeScript(t, `printf '%s|%s|%s' "$1" "$2" "$3" > "$2"`+"\n")

	ex, err := NewExec("fake-svgexport")
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, ex.Rasterize("in.svg", dst, Size{Width: 46, Height: 32}))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "in.svg|"+dst+"|46:32", string(data))
}

func TestExec_NonZeroExitCarriesDiagnostic(t *testing.T) {
	writeScript(t, "echo '  viewBox is missing  ' >&2\nexit 3\n")

	ex, err := NewExec("fake-svgexport")
	require.NoError(t, err)

	err = ex.Rasterize("in.svg", "out.png", Size{})
	require.Error(t, err)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 3, toolErr.ExitCode)
	assert.Equal(t, "viewBox is missing", toolErr.Error())
}

func TestNative_Rasterize(t *testing.T) {
	src := writeSVGs(t, t.TempDir(), "close.svg")[0]
	dst := filepath.Join(t.TempDir(), "close.png")

	require.NoError(t, Native{}.Rasterize(src, dst, Size{Width: 12, Height: 6}))
	require.NoError(t, verifyPNG(dst))
}

func TestTargetDimensions(t *testing.T) {
	tests := []struct {
		name  string
		size  Size
		wantW int
		wantH int
		viewW float64
		viewH float64
	}{
		{name: "viewBox size", size: Size{}, viewW: 20, viewH: 10, wantW: 20, wantH: 10},
		{name: "explicit size", size: Size{Width: 46, Height: 32}, viewW: 20, viewH: 10, wantW: 46, wantH: 32},
		{name: "width only keeps ratio", size: Size{Width: 40}, viewW: 20, viewH: 10, wantW: 40, wantH: 20},
		{name: "height only keeps ratio", size: Size{Height: 5}, viewW: 20, viewH: 10, wantW: 10, wantH: 5},
		{name: "no viewBox", size: Size{}, viewW: 0, viewH: 0, wantW: fallbackSize, wantH: fallbackSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := targetDimensions(tt.viewW, tt.viewH, tt.size)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
