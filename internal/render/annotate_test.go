package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/f3rmion/liveocr/internal/geom"
	"github.com/f3rmion/liveocr/internal/segment"
)

func TestAnnotateDrawsOutlines(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	a, err := NewAnnotator("")
	if err != nil {
		t.Fatal(err)
	}

	blocks := []segment.Block{{
		Text:  "你",
		Boxes: []segment.CharBox{{Index: 0, Bounds: geom.NewRect(10, 10, 30, 30)}},
	}}
	out := a.Annotate(img, blocks)

	for _, pt := range []image.Point{{10, 10}, {30, 10}, {10, 30}, {20, 10}, {10, 20}} {
		if got := out.RGBAAt(pt.X, pt.Y); got != boxColor {
			t.Errorf("pixel at %v = %v, want outline color", pt, got)
		}
	}
	// Interior untouched.
	if got := out.RGBAAt(20, 20); got == boxColor {
		t.Error("interior pixel was painted")
	}
}

func TestAnnotateClampsOutOfBoundsBoxes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	a, _ := NewAnnotator("")

	blocks := []segment.Block{{
		Text:  "好",
		Boxes: []segment.CharBox{{Index: 0, Bounds: geom.NewRect(-5, -5, 40, 40)}},
	}}
	out := a.Annotate(img, blocks) // must not panic
	if got := out.RGBAAt(0, 0); got != boxColor {
		t.Errorf("clamped corner = %v, want outline color", got)
	}
}

func TestAnnotateDoesNotMutateSource(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	img.SetRGBA(10, 10, color.RGBA{G: 255, A: 255})
	a, _ := NewAnnotator("")

	blocks := []segment.Block{{
		Text:  "你",
		Boxes: []segment.CharBox{{Index: 0, Bounds: geom.NewRect(10, 10, 20, 20)}},
	}}
	a.Annotate(img, blocks)
	if got := img.RGBAAt(10, 10); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("source image mutated: %v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestNewAnnotatorMissingFont(t *testing.T) {
	if _, err := NewAnnotator("/does/not/exist.ttf"); err == nil {
		t.Error("expected error for missing font file")
	}
}
