package draft

import (
	"math"
	"testing"
)

func snapFixture() (*Document, *Camera, *Snapper) {
	doc := NewDocument()
	doc.Settings().SnapSpacing = 5
	cam := NewCamera()
	return doc, cam, NewSnapper()
}

func TestGridSnap(t *testing.T) {
	doc, cam, sn := snapFixture()
	tests := []struct {
		name string
		raw  Point
		want Point
	}{
		{"floors to lower multiple", Pt(12.6, 7.4), Pt(10, 5)},
		{"near upper multiple still floors", Pt(13.1, 8.2), Pt(10, 5)},
		{"negative floors away from zero", Pt(-2.6, -2.4), Pt(-5, -5)},
		{"exact", Pt(20, 25), Pt(20, 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sn.Snap(doc, cam, tt.raw)
			if got != tt.want {
				t.Errorf("Snap(%+v) = %+v, want %+v", tt.raw, got, tt.want)
			}
			if sn.Last().Kind != SnapGrid {
				t.Errorf("Last().Kind = %v, want SnapGrid", sn.Last().Kind)
			}
		})
	}
}

func TestEndpointSnapBeatsGrid(t *testing.T) {
	doc, cam, sn := snapFixture()
	doc.AddEntity(NewLine(Pt(12, 7), Pt(100, 100)))

	got := sn.Snap(doc, cam, Pt(12.6, 7.4))
	if got != Pt(12, 7) {
		t.Errorf("Snap = %+v, want line endpoint (12, 7)", got)
	}
	if sn.Last().Kind != SnapEndpoint {
		t.Errorf("Last().Kind = %v, want SnapEndpoint", sn.Last().Kind)
	}
}

func TestMidpointSnap(t *testing.T) {
	doc, cam, sn := snapFixture()
	sn.Endpoint = false
	doc.AddEntity(NewLine(Pt(0, 0), Pt(100, 0)))

	got := sn.Snap(doc, cam, Pt(49, 2))
	if got != Pt(50, 0) {
		t.Errorf("Snap = %+v, want segment midpoint (50, 0)", got)
	}
	if sn.Last().Kind != SnapMidpoint {
		t.Errorf("Last().Kind = %v, want SnapMidpoint", sn.Last().Kind)
	}
}

func TestSnapThresholdIsScreenSpace(t *testing.T) {
	doc, cam, sn := snapFixture()
	sn.Grid = false
	doc.AddEntity(NewLine(Pt(0, 0), Pt(100, 0)))

	// 8 world units at scale 1 is 8px: captured.
	if got := sn.Snap(doc, cam, Pt(8, 0)); got != Pt(0, 0) {
		t.Errorf("at scale 1, Snap(8,0) = %+v, want (0,0)", got)
	}

	// Zoom in 10x: the same 8 world units is now 80px: out of range.
	for cam.Scale() < 10 {
		cam.Zoom(1, Pt(0, 0))
	}
	if got := sn.Snap(doc, cam, Pt(8, 0)); got == Pt(0, 0) {
		t.Error("at scale >=10, 8 world units should exceed the pixel threshold")
	}
}

func TestSnapDisabled(t *testing.T) {
	doc, cam, sn := snapFixture()
	doc.AddEntity(NewLine(Pt(12, 7), Pt(100, 100)))
	sn.Enabled = false

	raw := Pt(12.3, 6.9)
	if got := sn.Snap(doc, cam, raw); got != raw {
		t.Errorf("disabled snapper changed the point: %+v", got)
	}
	if sn.Last().Kind != SnapNone {
		t.Errorf("Last().Kind = %v, want SnapNone", sn.Last().Kind)
	}
}

func TestSnapRuleToggles(t *testing.T) {
	doc, cam, sn := snapFixture()
	doc.AddEntity(NewLine(Pt(12, 7), Pt(100, 100)))

	sn.Endpoint = false
	sn.Midpoint = false
	if got := sn.Snap(doc, cam, Pt(12.6, 7.4)); got != Pt(10, 5) {
		t.Errorf("with entity rules off, Snap = %+v, want grid point (10, 5)", got)
	}

	sn.Grid = false
	raw := Pt(12.6, 7.4)
	if got := sn.Snap(doc, cam, raw); got != raw {
		t.Errorf("with all rules off, Snap = %+v, want raw", got)
	}
}

func TestSnapSkipsHiddenEntities(t *testing.T) {
	doc, cam, sn := snapFixture()
	sn.Grid = false
	doc.AddLayer("hidden", RGB(1, 1, 1)).Visible = false
	line := NewLine(Pt(12, 7), Pt(100, 100))
	line.Attrs().Layer = "hidden"
	doc.AddEntity(line)

	raw := Pt(12.6, 7.4)
	if got := sn.Snap(doc, cam, raw); got != raw {
		t.Errorf("snapped to an entity on a hidden layer: %+v", got)
	}
}

func TestSnapDocumentOrderTieBreak(t *testing.T) {
	doc, cam, sn := snapFixture()
	sn.Grid = false
	// Two endpoints equidistant from the cursor.
	doc.AddEntity(NewLine(Pt(0, 4), Pt(100, 100)))
	doc.AddEntity(NewLine(Pt(0, -4), Pt(-100, -100)))

	got := sn.Snap(doc, cam, Pt(0, 0))
	if got != Pt(0, 4) {
		t.Errorf("tie broke to %+v, want first-added endpoint (0, 4)", got)
	}
}

func TestSnapNearestWins(t *testing.T) {
	doc, cam, sn := snapFixture()
	sn.Grid = false
	doc.AddEntity(NewLine(Pt(0, 6), Pt(100, 100)))
	doc.AddEntity(NewLine(Pt(0, -3), Pt(-100, -100)))

	got := sn.Snap(doc, cam, Pt(0, 0))
	if math.Abs(got.Y+3) > eps {
		t.Errorf("Snap = %+v, want the nearer endpoint (0, -3)", got)
	}
}
