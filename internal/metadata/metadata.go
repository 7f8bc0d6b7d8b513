// Package metadata reads the metadata.cfg file that describes a header button theme.
package metadata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileName is the metadata file looked up in every input directory.
const FileName = "metadata.cfg"

// Recognized metadata keys
const (
	KeyName               = "Name"
	KeyButtonWidth        = "ButtonWidth"
	KeyButtonHeight       = "ButtonHeight"
	KeyGroupSpacing       = "GroupSpacing"
	KeyGroupPaddingTop    = "GroupPaddingTop"
	KeyGroupPaddingRight  = "GroupPaddingRight"
	KeyGroupPaddingBottom = "GroupPaddingBottom"
	KeyGroupPaddingLeft   = "GroupPaddingLeft"
)

// DefaultName is used for the stylesheet when the metadata has no Name.
const DefaultName = "default"

// ErrNotFound is returned when the input directory has no metadata file.
var ErrNotFound = errors.New("metadata file doesn't exist")

// Metadata maps keys to values exactly as written in the file.
// Unknown keys are kept.
type Metadata map[string]string

// Read locates and parses the metadata file in dir.
func Read(dir string) (Metadata, error) {
	path := filepath.Join(dir, FileName)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: '%s'", ErrNotFound, path)
	}

	// #nosec G304 - path is built from the input directory
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metadata: %w", err)
	}
	defer f.Close()

	md, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return md, nil
}

// Parse reads key=value lines of any length. Lines without '=' are ignored,
// the line is split on the first '=' only and the last occurrence of a key wins.
func Parse(r io.Reader) (Metadata, error) {
	md := make(Metadata)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if key, value, ok := strings.Cut(line, "="); ok {
			md[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}

		if errors.Is(err, io.EOF) {
			return md, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Get returns the value for key or def when the key is absent.
func (m Metadata) Get(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Dimension returns the raw value of a numeric key, "0" when absent.
func (m Metadata) Dimension(key string) string {
	return m.Get(key, "0")
}

// Int parses a numeric key. A missing key yields 0.
func (m Metadata) Int(key string) (int, error) {
	v, err := strconv.Atoi(m.Dimension(key))
	if err != nil {
		return 0, fmt.Errorf("metadata key %s: invalid number %q", key, m[key])
	}
	return v, nil
}

// Name returns the theme name used for the stylesheet file.
func (m Metadata) Name() string {
	return m.Get(KeyName, DefaultName)
}
