// Package ocr defines the text detection collaborator. The engine itself is
// external; this package only fixes the shape of its results and provides
// adapters for driving one.
package ocr

import (
	"context"
	"image"

	"github.com/f3rmion/liveocr/internal/geom"
)

// Line is one detected text line: the recognized string and the line-level
// bounding polygon in source image pixel coordinates.
type Line struct {
	Text    string       `json:"text"`
	Polygon [][2]float64 `json:"polygon"`
}

// Bounds returns the axis-aligned bounding rect of the polygon.
func (l Line) Bounds() geom.Rect {
	if len(l.Polygon) == 0 {
		return geom.Rect{}
	}
	r := geom.NewRect(l.Polygon[0][0], l.Polygon[0][1], l.Polygon[0][0], l.Polygon[0][1])
	for _, p := range l.Polygon[1:] {
		r = r.Union(geom.NewRect(p[0], p[1], p[0], p[1]))
	}
	return r
}

// Engine detects text lines in an image. Errors abort the whole detection
// pass; there are no partial results.
type Engine interface {
	Detect(ctx context.Context, img image.Image) ([]Line, error)
}
