package geom

import (
	"math"
	"testing"
)

func TestNewRectCanonical(t *testing.T) {
	r := NewRect(10, 20, 2, 4)
	want := Rect{MinX: 2, MinY: 4, MaxX: 10, MaxY: 20}
	if r != want {
		t.Errorf("NewRect = %+v, want %+v", r, want)
	}
}

func TestIntersectsAndUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 15, 15)
	c := NewRect(11, 11, 20, 20)

	if !a.Intersects(b) {
		t.Error("a should intersect b")
	}
	if a.Intersects(c) {
		t.Error("a should not intersect c")
	}

	u := a.Union(b)
	if u != NewRect(0, 0, 15, 15) {
		t.Errorf("Union = %+v", u)
	}
}

func TestDistance(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		p    Point
		want float64
	}{
		{Point{5, 5}, 0},    // inside
		{Point{10, 5}, 0},   // on edge
		{Point{15, 5}, 5},   // right of
		{Point{5, -3}, 3},   // above
		{Point{13, 14}, 5},  // diagonal, 3-4-5
	}
	for _, tt := range tests {
		if got := r.Distance(tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Distance(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTranslateExpand(t *testing.T) {
	r := NewRect(1, 1, 3, 3).Translate(10, 20)
	if r != NewRect(11, 21, 13, 23) {
		t.Errorf("Translate = %+v", r)
	}
	e := NewRect(1, 1, 3, 3).Expand(0.5)
	if e != NewRect(0.5, 0.5, 3.5, 3.5) {
		t.Errorf("Expand = %+v", e)
	}
}
