package draft

import (
	"math"
	"testing"
)

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"on segment", Pt(5, 0), Pt(0, 0), Pt(10, 0), 0},
		{"above middle", Pt(5, 3), Pt(0, 0), Pt(10, 0), 3},
		{"beyond end clamps", Pt(14, 0), Pt(0, 0), Pt(10, 0), 4},
		{"before start clamps", Pt(-3, 4), Pt(0, 0), Pt(10, 0), 5},
		{"zero-length segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
		{"diagonal", Pt(0, 2), Pt(-1, 0), Pt(1, 0), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentDistance(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("segmentDistance(%+v, %+v, %+v) = %v, want %v", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectOf(t *testing.T) {
	r := RectOf(Pt(3, -1), Pt(-2, 5), Pt(0, 0))
	want := Rect{Min: Pt(-2, -1), Max: Pt(3, 5)}
	if r != want {
		t.Errorf("RectOf = %+v, want %+v", r, want)
	}
	if z := RectOf(); z != (Rect{}) {
		t.Errorf("RectOf() = %+v, want zero Rect", z)
	}
}

func TestRectRelations(t *testing.T) {
	outer := RectFromCorners(Pt(0, 0), Pt(10, 10))
	inner := RectFromCorners(Pt(2, 2), Pt(8, 8))
	straddling := RectFromCorners(Pt(8, 8), Pt(14, 14))
	outside := RectFromCorners(Pt(20, 20), Pt(30, 30))

	if !outer.ContainsRect(inner) {
		t.Error("outer should contain inner")
	}
	if outer.ContainsRect(straddling) {
		t.Error("outer should not contain straddling rect")
	}
	if !outer.Overlaps(straddling) {
		t.Error("outer should overlap straddling rect")
	}
	if outer.Overlaps(outside) {
		t.Error("outer should not overlap a disjoint rect")
	}
	if got := outer.Union(outside); got != RectFromCorners(Pt(0, 0), Pt(30, 30)) {
		t.Errorf("Union = %+v", got)
	}
}
