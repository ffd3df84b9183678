package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
)

// CommandEngine runs an external OCR process per detection pass: the captured
// image is written to stdin as PNG and the process prints a JSON array of
// lines on stdout. Keeps the heavyweight detector out of this process.
type CommandEngine struct {
	Path string
	Args []string
}

// Detect implements Engine.
func (e *CommandEngine) Detect(ctx context.Context, img image.Image) ([]Line, error) {
	var in bytes.Buffer
	if err := png.Encode(&in, img); err != nil {
		return nil, fmt.Errorf("encoding capture for ocr: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.Path, e.Args...)
	cmd.Stdin = &in
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running ocr command %s: %w", e.Path, err)
	}

	var lines []Line
	if err := json.Unmarshal(out, &lines); err != nil {
		return nil, fmt.Errorf("parsing ocr output: %w", err)
	}
	return lines, nil
}

// FileEngine serves pre-computed detection results from a JSON file. Used by
// the segment debug command and tests.
type FileEngine struct {
	lines []Line
}

// NewFileEngine loads a JSON array of lines from path.
func NewFileEngine(path string) (*FileEngine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading detection fixture: %w", err)
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("parsing detection fixture: %w", err)
	}
	return &FileEngine{lines: lines}, nil
}

// Detect implements Engine, returning the fixture lines regardless of input.
func (e *FileEngine) Detect(context.Context, image.Image) ([]Line, error) {
	return e.lines, nil
}
