package raster

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultTool is the rasterization executable used when none is configured.
const DefaultTool = "svgexport"

var (
	// ErrToolNotFound means the rasterization executable is not on PATH.
	ErrToolNotFound = errors.New("command is not found in the system PATH")
	// ErrNotPNG means the rasterizer reported success without producing a PNG.
	ErrNotPNG = errors.New("rasterizer output is not a PNG image")
)

// ToolError is returned when the external tool exits with a non-zero status.
type ToolError struct {
	Tool       string
	ExitCode   int
	Diagnostic string // trimmed stderr of the tool
}

func (e *ToolError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	}
	return e.Diagnostic
}

// Exec runs an external svgexport-compatible command:
//
//	<tool> <src.svg> <dst.png> <width>:<height>
type Exec struct {
	tool string
	path string
}

// NewExec resolves tool on PATH. An empty tool means DefaultTool.
func NewExec(tool string) (*Exec, error) {
	if tool == "" {
		tool = DefaultTool
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return nil, fmt.Errorf("%s %w", tool, ErrToolNotFound)
	}

	return &Exec{tool: tool, path: path}, nil
}

// Path returns the resolved executable path.
func (e *Exec) Path() string {
	return e.path
}

// Rasterize runs the tool once and waits for it.
func (e *Exec) Rasterize(src, dst string, size Size) error {
	var stdout, stderr bytes.Buffer

	// #nosec G204 - the tool is chosen by the operator
	cmd := exec.Command(e.path, src, dst, size.String())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{
			Tool:       e.tool,
			ExitCode:   exitErr.ExitCode(),
			Diagnostic: strings.TrimSpace(stderr.String()),
		}
	}
	return fmt.Errorf("running %s: %w", e.tool, err)
}
