// Package render draws segmentation results onto captured images, for the
// segment command and for debugging the character boxes.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"

	"github.com/f3rmion/liveocr/internal/geom"
	"github.com/f3rmion/liveocr/internal/segment"
)

// Character boxes are outlined in red, index labels drawn in blue.
var (
	boxColor   = color.RGBA{R: 227, A: 255}
	labelColor = color.RGBA{R: 21, G: 16, B: 240, A: 255}
)

// Annotator draws character boxes, optionally labeled with their index when a
// font is available.
type Annotator struct {
	font *truetype.Font
	size float64
}

// NewAnnotator returns an annotator. fontPath may be empty, in which case
// boxes are drawn without labels.
func NewAnnotator(fontPath string) (*Annotator, error) {
	a := &Annotator{size: 14}
	if fontPath == "" {
		return a, nil
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	fnt, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	a.font = fnt
	return a, nil
}

// Annotate copies img and draws every character box of every block onto the
// copy.
func (a *Annotator) Annotate(img image.Image, blocks []segment.Block) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)

	for _, block := range blocks {
		for _, box := range block.Boxes {
			outline(out, box.Bounds, boxColor)
		}
	}

	if a.font != nil {
		a.drawLabels(out, blocks)
	}
	return out
}

func (a *Annotator) drawLabels(dst *image.RGBA, blocks []segment.Block) {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(a.font)
	ctx.SetFontSize(a.size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(labelColor))

	for _, block := range blocks {
		for _, box := range block.Boxes {
			// Label sits just above the box, clamped into the image.
			y := int(box.Bounds.MinY) - 2
			if y < int(a.size) {
				y = int(box.Bounds.MaxY) + int(a.size)
			}
			pt := fixed.Point26_6{X: fixed.I(int(box.Bounds.MinX)), Y: fixed.I(y)}
			if _, err := ctx.DrawString(fmt.Sprintf("%d", box.Index), pt); err != nil {
				return
			}
		}
	}
}

// outline draws a one pixel rectangle, clamped to the image bounds.
func outline(dst *image.RGBA, r geom.Rect, c color.RGBA) {
	b := dst.Bounds()
	x0, y0 := clamp(int(r.MinX), b.Min.X, b.Max.X-1), clamp(int(r.MinY), b.Min.Y, b.Max.Y-1)
	x1, y1 := clamp(int(r.MaxX), b.Min.X, b.Max.X-1), clamp(int(r.MaxY), b.Min.Y, b.Max.Y-1)

	for x := x0; x <= x1; x++ {
		dst.SetRGBA(x, y0, c)
		dst.SetRGBA(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		dst.SetRGBA(x0, y, c)
		dst.SetRGBA(x1, y, c)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
