package live

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/liveocr/internal/dict"
	"github.com/f3rmion/liveocr/internal/geom"
	"github.com/f3rmion/liveocr/internal/segment"
)

const sampleSource = `[
	{"simplified": "你", "traditional": "你", "pinyin": "ni3", "translations": ["you"]},
	{"simplified": "好", "traditional": "好", "pinyin": "hao3", "translations": ["good"]},
	{"simplified": "你好", "traditional": "你好", "pinyin": "ni3 hao3", "translations": ["hello"]},
	{"simplified": "世界", "traditional": "世界", "pinyin": "shi4 jie4", "translations": ["world"]}
]`

func sampleDict(t *testing.T) *dict.Dictionary {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "cedict.json")
	if err := os.WriteFile(src, []byte(sampleSource), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := dict.Load(src, filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("loading sample dictionary: %v", err)
	}
	return d
}

// sampleBlocks lays out 你好 as two adjacent 20x20 boxes starting at x=0.
func sampleBlocks() []segment.Block {
	return []segment.Block{{
		Text: "你好",
		Boxes: []segment.CharBox{
			{Index: 0, Bounds: geom.NewRect(0, 0, 20, 20)},
			{Index: 1, Bounds: geom.NewRect(25, 0, 45, 20)},
		},
	}}
}

func TestTrackerHoverQueriesRun(t *testing.T) {
	tr := NewTracker(sampleDict(t))
	blocks := sampleBlocks()

	upd := tr.Move(blocks, geom.Point{X: 5, Y: 5})
	if !upd.Changed {
		t.Fatal("first hover should change")
	}
	if upd.Hover == nil || upd.Hover.Text != "你好" || upd.Hover.Index != 0 {
		t.Fatalf("hover = %+v", upd.Hover)
	}
	if upd.Run != "你好" {
		t.Errorf("run = %q, want 你好 (maximal CJK run from index 0)", upd.Run)
	}
	// 你好 and its prefix 你 both match, longest first.
	if len(upd.Entries) != 2 || upd.Entries[0].Simplified != "你好" {
		t.Errorf("entries = %+v", upd.Entries)
	}
}

func TestTrackerIdempotentHover(t *testing.T) {
	tr := NewTracker(sampleDict(t))
	blocks := sampleBlocks()

	if upd := tr.Move(blocks, geom.Point{X: 5, Y: 5}); !upd.Changed {
		t.Fatal("first move should change")
	}
	// Drifting within the same glyph box never re-queries.
	for _, pt := range []geom.Point{{X: 6, Y: 5}, {X: 10, Y: 19}, {X: 0, Y: 0}} {
		if upd := tr.Move(blocks, pt); upd.Changed {
			t.Errorf("move to %+v re-triggered a query", pt)
		}
	}
}

func TestTrackerCrossGlyphChangesHover(t *testing.T) {
	tr := NewTracker(sampleDict(t))
	blocks := sampleBlocks()

	tr.Move(blocks, geom.Point{X: 5, Y: 5})
	upd := tr.Move(blocks, geom.Point{X: 30, Y: 5})
	if !upd.Changed || upd.Hover == nil || upd.Hover.Index != 1 {
		t.Fatalf("second glyph hover = %+v", upd)
	}
	if upd.Run != "好" {
		t.Errorf("run = %q, want 好", upd.Run)
	}
	if len(upd.Entries) != 1 || upd.Entries[0].Simplified != "好" {
		t.Errorf("entries = %+v", upd.Entries)
	}
}

func TestTrackerProximityThresholdStrict(t *testing.T) {
	tr := NewTracker(sampleDict(t))
	blocks := sampleBlocks()

	// Exactly at the threshold: not hovering, and with no prior hover the
	// evaluation is a complete no-op.
	if upd := tr.Move(blocks, geom.Point{X: 50, Y: 5}); upd.Changed {
		t.Error("distance == threshold must not hover")
	}
	// Just below the threshold: hovering.
	if upd := tr.Move(blocks, geom.Point{X: 49.99, Y: 5}); !upd.Changed {
		t.Error("distance just below threshold must hover")
	}
}

func TestTrackerClearOnLeave(t *testing.T) {
	tr := NewTracker(sampleDict(t))
	blocks := sampleBlocks()

	tr.Move(blocks, geom.Point{X: 5, Y: 5})

	upd := tr.Move(blocks, geom.Point{X: 200, Y: 200})
	if !upd.Changed {
		t.Fatal("leaving proximity should clear the hover")
	}
	if upd.Hover != nil || len(upd.Entries) != 0 {
		t.Errorf("clear update = %+v", upd)
	}

	// Already cleared: further far-away moves are no-ops.
	if upd := tr.Move(blocks, geom.Point{X: 300, Y: 300}); upd.Changed {
		t.Error("second clear emitted a redundant update")
	}
}

func TestTrackerNoBlocks(t *testing.T) {
	tr := NewTracker(sampleDict(t))
	if upd := tr.Move(nil, geom.Point{X: 5, Y: 5}); upd.Changed {
		t.Error("no blocks should never hover")
	}
}
