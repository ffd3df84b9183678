package live

import (
	"math"

	"github.com/f3rmion/liveocr/internal/cjk"
	"github.com/f3rmion/liveocr/internal/dict"
	"github.com/f3rmion/liveocr/internal/geom"
	"github.com/f3rmion/liveocr/internal/segment"
)

// ProximityThreshold is the maximum pointer distance, in source pixels, at
// which a character counts as hovered. The comparison is strict: a pointer
// exactly at the threshold is not hovering.
const ProximityThreshold = 5.0

// Hover identifies the character under the pointer.
type Hover struct {
	Text   string
	Index  int
	Bounds geom.Rect
}

// Tracker resolves pointer positions against segmented blocks and
// deduplicates hover transitions so the dictionary is queried once per
// distinct character.
type Tracker struct {
	dict  *dict.Dictionary
	hover *Hover
}

// NewTracker returns a tracker querying d.
func NewTracker(d *dict.Dictionary) *Tracker {
	return &Tracker{dict: d}
}

// Update is the result of one pointer evaluation. Changed is false when the
// evaluation was a no-op (same character, or nothing hovered before and now).
type Update struct {
	Changed bool
	Hover   *Hover // nil when the hover cleared
	Run     string // the maximal CJK run that was looked up
	Entries []dict.Entry
}

// Move evaluates one pointer position against blocks.
func (t *Tracker) Move(blocks []segment.Block, pt geom.Point) Update {
	text, index, bounds, distance := closestChar(blocks, pt)

	if distance >= ProximityThreshold {
		if t.hover == nil {
			return Update{} // nothing to clear, avoid a redundant event
		}
		t.hover = nil
		return Update{Changed: true}
	}

	if t.hover != nil && t.hover.Text == text && t.hover.Index == index {
		return Update{} // same glyph, no re-query
	}

	t.hover = &Hover{Text: text, Index: index, Bounds: bounds}
	run := cjk.LongestRun(text, index)
	return Update{
		Changed: true,
		Hover:   t.hover,
		Run:     run,
		Entries: t.dict.Matches(run),
	}
}

// Reset clears the hover identity, for session teardown.
func (t *Tracker) Reset() {
	t.hover = nil
}

// closestChar finds the character box nearest to pt across all blocks.
// Returns +Inf distance when there are no boxes.
func closestChar(blocks []segment.Block, pt geom.Point) (string, int, geom.Rect, float64) {
	var (
		text     string
		index    int
		bounds   geom.Rect
		distance = math.Inf(1)
	)
	for _, block := range blocks {
		for _, box := range block.Boxes {
			if d := box.Bounds.Distance(pt); d < distance {
				distance = d
				text = block.Text
				index = box.Index
				bounds = box.Bounds
			}
		}
	}
	return text, index, bounds, distance
}
