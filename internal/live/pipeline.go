package live

import (
	"context"
	"fmt"

	"github.com/f3rmion/liveocr/internal/capture"
	"github.com/f3rmion/liveocr/internal/ocr"
	"github.com/f3rmion/liveocr/internal/segment"
)

// Pipeline produces segmented blocks for a monitor. It may block for as long
// as capture and detection take; the session never holds its lock across a
// Run call.
type Pipeline interface {
	Run(ctx context.Context, m capture.Monitor) ([]segment.Block, error)
}

// OcrPipeline is the production pipeline: grab the monitor, detect lines,
// segment characters.
type OcrPipeline struct {
	Capturer capture.Capturer
	Engine   ocr.Engine
}

// Run implements Pipeline.
func (p *OcrPipeline) Run(ctx context.Context, m capture.Monitor) ([]segment.Block, error) {
	img, err := p.Capturer.Capture(m)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	lines, err := p.Engine.Detect(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	return segment.Segment(img, lines), nil
}
