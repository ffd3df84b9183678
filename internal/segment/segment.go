// Package segment turns line-level OCR results into per-character bounding
// boxes. Detectors only report whole lines; the split relies on contour
// analysis of the binarized line crop plus a uniform-spacing assumption.
package segment

import (
	"errors"
	"image"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/liveocr/internal/cjk"
	"github.com/f3rmion/liveocr/internal/geom"
	"github.com/f3rmion/liveocr/internal/ocr"
)

// Per-line failures. Lines that cannot be segmented are dropped from the
// result set; the rest of the pipeline proceeds.
var (
	ErrNotCJKLine     = errors.New("line is not all-CJK")
	ErrNoText         = errors.New("no text left after stripping punctuation")
	ErrTooFewContours = errors.New("fewer than two contours in line crop")
	ErrZeroCharWidth  = errors.New("no usable contour width")
	ErrEmptyCrop      = errors.New("line bounds outside image")
)

// CharBox locates one character: Index is its rune position within the
// owning block's text, Bounds the box in source image pixel coordinates.
type CharBox struct {
	Index  int
	Bounds geom.Rect
}

// Block is one segmented line: the punctuation-stripped text and one box per
// rune, ordered left to right.
type Block struct {
	Text  string
	Boxes []CharBox
}

// Segment splits each qualifying detected line into character boxes. Lines
// that are empty, mixed-script, or fail segmentation are skipped.
func Segment(img image.Image, lines []ocr.Line) []Block {
	var blocks []Block
	for _, line := range lines {
		block, err := segmentLine(img, line)
		if err != nil {
			slog.Debug("dropping line", "text", line.Text, "reason", err)
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func segmentLine(img image.Image, line ocr.Line) (Block, error) {
	if !cjk.IsLine(strings.TrimSpace(line.Text)) {
		return Block{}, ErrNotCJKLine
	}

	stripped := cjk.StripTrailing(line.Text)
	textLen := utf8.RuneCountInString(stripped)
	removed := utf8.RuneCountInString(line.Text) - textLen

	if textLen == 0 {
		return Block{}, ErrNoText
	}
	if textLen == 1 {
		return Block{
			Text:  stripped,
			Boxes: []CharBox{{Index: 0, Bounds: line.Bounds()}},
		}, nil
	}

	lineBounds := line.Bounds()
	crop := image.Rect(
		int(lineBounds.MinX), int(lineBounds.MinY),
		int(lineBounds.MaxX), int(lineBounds.MaxY),
	).Intersect(img.Bounds())
	if crop.Empty() {
		return Block{}, ErrEmptyCrop
	}

	bin := binarize(img, crop)
	boxes := contourRects(bin)
	if len(boxes) < 2 {
		return Block{}, ErrTooFewContours
	}

	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].MinX < boxes[j].MinX })

	if removed > 0 {
		// Stripped trailing glyphs contour as the last entries; coalesce
		// intersecting stroke clusters first so the tail count lines up.
		boxes = mergeIntersecting(boxes)
		if removed >= len(boxes) {
			return Block{}, ErrTooFewContours
		}
		boxes = boxes[:len(boxes)-removed]
	}

	charWidth := maxWidth(boxes)
	if charWidth == 0 {
		return Block{}, ErrZeroCharWidth
	}

	lineRect := lineBoundsOf(boxes, charWidth)
	if charWidth*float64(textLen) > lineRect.Width() {
		corrected := lineRect.Width() / float64(textLen)
		slog.Warn("character boxes exceed line, correcting width",
			"factor", corrected/charWidth, "text", stripped)
		charWidth = corrected
	}

	spacing := (lineRect.Width() - charWidth*float64(textLen)) / float64(textLen-1)

	out := Block{Text: stripped, Boxes: make([]CharBox, 0, textLen)}
	for i := 0; i < textLen; i++ {
		minX := lineRect.MinX + float64(i)*(spacing+charWidth)
		box := geom.Rect{
			MinX: minX,
			MinY: lineRect.MinY,
			MaxX: minX + charWidth,
			MaxY: lineRect.MaxY,
		}.Translate(float64(crop.Min.X), float64(crop.Min.Y))
		out.Boxes = append(out.Boxes, CharBox{Index: i, Bounds: box})
	}
	return out, nil
}

// mergeIntersecting replaces each box that geometrically intersects an
// earlier one with the union of the two. The slice keeps its length; only
// the shapes coalesce.
func mergeIntersecting(boxes []geom.Rect) []geom.Rect {
	out := make([]geom.Rect, 0, len(boxes))
	for _, b := range boxes {
		merged := b
		for _, prev := range out {
			if prev.Intersects(b) {
				merged = b.Union(prev)
				break
			}
		}
		out = append(out, merged)
	}
	return out
}

func maxWidth(boxes []geom.Rect) float64 {
	var w float64
	for _, b := range boxes {
		if b.Width() > w {
			w = b.Width()
		}
	}
	return w
}

// lineBoundsOf spans all boxes horizontally; the height is normalized to at
// least one character width so a line whose tallest surviving contour is a
// small mark does not produce a degenerate height estimate.
func lineBoundsOf(boxes []geom.Rect, charWidth float64) geom.Rect {
	minX, minY := boxes[0].MinX, boxes[0].MinY
	maxX, maxHeight := boxes[0].MaxX, boxes[0].Height()
	for _, b := range boxes[1:] {
		if b.MinX < minX {
			minX = b.MinX
		}
		if b.MinY < minY {
			minY = b.MinY
		}
		if b.MaxX > maxX {
			maxX = b.MaxX
		}
		if b.Height() > maxHeight {
			maxHeight = b.Height()
		}
	}
	if charWidth > maxHeight {
		maxHeight = charWidth
	}
	return geom.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: minY + maxHeight}
}
