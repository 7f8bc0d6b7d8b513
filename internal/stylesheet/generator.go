// Package stylesheet renders header button PNGs into a CSS stylesheet.
package stylesheet

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/yacobolo/headergen/internal/metadata"
)

// DefaultPropertyPrefix is the vendor prefix of JavaFX CSS properties.
const DefaultPropertyPrefix = "-fx-"

// Fixed selectors of the button group
const (
	GroupButtonSelector    = ".header-button-group .header-button"
	GroupContainerSelector = ".header-button-group>.container"
)

// Rule is an image rule written to the stylesheet.
type Rule struct {
	File     string // PNG file name
	Selector string
	Bytes    int // size of the embedded PNG
}

// Skip is a PNG left out of the stylesheet.
type Skip struct {
	File   string
	Reason string
}

// Result describes a rendered stylesheet.
type Result struct {
	Rules   []Rule
	Skipped []Skip
}

// Generator renders stylesheets.
type Generator struct {
	prefix string
	log    *zap.Logger
}

// NewGenerator creates a generator writing properties with prefix.
func NewGenerator(prefix string, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{prefix: prefix, log: log.Named("stylesheet")}
}

// ListPNGs returns the non-hidden PNG files in dir in lexicographic order.
func ListPNGs(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "*.png")
	if err != nil {
		return nil, fmt.Errorf("listing PNG files: %w", err)
	}
	sort.Strings(matches)

	pngs := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasPrefix(m, ".") {
			continue
		}
		pngs = append(pngs, filepath.Join(dir, m))
	}
	return pngs, nil
}

// Write renders the stylesheet for every PNG in pngDir and writes it to path,
// replacing any existing file. Nothing is written when rendering fails.
func (g *Generator) Write(path string, md metadata.Metadata, pngDir string) (*Result, error) {
	pngs, err := ListPNGs(pngDir)
	if err != nil {
		return nil, err
	}

	content, result, err := g.Render(md, pngs)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return nil, fmt.Errorf("writing stylesheet: %w", err)
	}
	g.log.Debug("Wrote stylesheet", zap.String("path", path), zap.Int("rules", len(result.Rules)))

	return result, nil
}

// Render produces the stylesheet for pngs, which are processed in the given order.
func (g *Generator) Render(md metadata.Metadata, pngs []string) ([]byte, *Result, error) {
	var b strings.Builder
	result := &Result{}

	g.writeRule(&b, GroupButtonSelector,
		g.prop("background-repeat", "no-repeat"),
		g.prop("pref-width", md.Dimension(metadata.KeyButtonWidth)),
		g.prop("pref-height", md.Dimension(metadata.KeyButtonHeight)),
	)

	g.writeRule(&b, GroupContainerSelector,
		g.prop("spacing", md.Dimension(metadata.KeyGroupSpacing)),
		g.prop("padding", fmt.Sprintf("%spx %spx %spx %spx",
			md.Dimension(metadata.KeyGroupPaddingTop),
			md.Dimension(metadata.KeyGroupPaddingRight),
			md.Dimension(metadata.KeyGroupPaddingBottom),
			md.Dimension(metadata.KeyGroupPaddingLeft))),
	)

	for _, png := range pngs {
		name := filepath.Base(png)

		variant, err := ParseVariant(name)
		if err != nil {
			return nil, nil, err
		}

		if variant.Skipped() {
			g.log.Debug("Skipping variant", zap.String("file", name), zap.Strings("states", variant.StateList()))
			result.Skipped = append(result.Skipped, Skip{File: name, Reason: "pressed state is not rendered"})
			continue
		}

		selector, err := variant.Selector()
		if err != nil {
			var unknown *UnknownButtonError
			if errors.As(err, &unknown) {
				unknown.File = name
			}
			return nil, nil, err
		}

		// #nosec G304 - png comes from the scratch directory
		data, err := os.ReadFile(png)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", name, err)
		}

		g.writeRule(&b, selector,
			g.prop("background-image", fmt.Sprintf(`url("data:image/png;base64,%s")`, base64.StdEncoding.EncodeToString(data))),
		)
		result.Rules = append(result.Rules, Rule{File: name, Selector: selector, Bytes: len(data)})
		g.log.Debug("Added rule", zap.String("file", name), zap.String("selector", selector))
	}

	return []byte(b.String()), result, nil
}

func (g *Generator) prop(name, value string) string {
	return fmt.Sprintf("%s%s: %s;", g.prefix, name, value)
}

func (g *Generator) writeRule(b *strings.Builder, selector string, declarations ...string) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range declarations {
		b.WriteString("\t")
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
}
