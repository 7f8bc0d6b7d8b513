package headergen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFileName is an optional gitignore-style file in the input directory
// listing icons that should not be processed.
const IgnoreFileName = ".headergenignore"

// scanSVGFiles lists the SVG icons directly inside dir. Hidden files
// (macOS "._" resource forks and the like) are not icons and are skipped.
// Icons matched by the ignore file or patterns are returned separately.
func scanSVGFiles(dir string, patterns []string) (files, ignored []string, err error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "*.svg")
	if err != nil {
		return nil, nil, fmt.Errorf("glob svg files: %w", err)
	}

	gi, err := loadIgnore(dir, patterns)
	if err != nil {
		return nil, nil, err
	}

	for _, m := range matches {
		if strings.HasPrefix(m, ".") {
			continue
		}
		if gi != nil && gi.MatchesPath(m) {
			ignored = append(ignored, filepath.Join(dir, m))
			continue
		}
		files = append(files, filepath.Join(dir, m))
	}

	return files, ignored, nil
}

// loadIgnore compiles the ignore file of dir together with extra patterns.
// It returns nil when there is nothing to ignore.
func loadIgnore(dir string, patterns []string) (*ignore.GitIgnore, error) {
	path := filepath.Join(dir, IgnoreFileName)

	if _, err := os.Stat(path); err == nil {
		gi, err := ignore.CompileIgnoreFileAndLines(path, patterns...)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return gi, nil
	}

	if len(patterns) == 0 {
		return nil, nil
	}
	return ignore.CompileIgnoreLines(patterns...), nil
}
