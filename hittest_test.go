package draft

import "testing"

func TestPickTopmostWins(t *testing.T) {
	doc := NewDocument()
	cam := NewCamera()
	bottom := doc.AddEntity(NewCircle(Pt(0, 0), 10))
	top := doc.AddEntity(NewCircle(Pt(0, 0), 10))
	_ = bottom

	got := Pick(doc, cam, Pt(10, 0))
	if got != top {
		t.Errorf("picked %v, want the entity drawn last", got)
	}
}

func TestPickToleranceInvariantUnderZoom(t *testing.T) {
	doc := NewDocument()
	doc.AddEntity(NewLine(Pt(0, 0), Pt(100, 0)))

	// Click 3px above the line on screen at scale 1 and at scale 10:
	// both must resolve identically.
	for _, scale := range []float64{1, 10} {
		cam := NewCamera()
		for cam.Scale() < scale {
			cam.Zoom(1, Pt(0, 0))
		}
		clickWorld := cam.ScreenToWorld(cam.WorldToScreen(Pt(50, 0)).Add(Pt(0, 3)))
		if Pick(doc, cam, clickWorld) == nil {
			t.Errorf("scale %v: 3px off the line should pick", cam.Scale())
		}
		clickWorld = cam.ScreenToWorld(cam.WorldToScreen(Pt(50, 0)).Add(Pt(0, 9)))
		if Pick(doc, cam, clickWorld) != nil {
			t.Errorf("scale %v: 9px off the line should miss", cam.Scale())
		}
	}
}

func TestPickSkipsLockedAndHiddenLayers(t *testing.T) {
	doc := NewDocument()
	cam := NewCamera()
	doc.AddLayer("locked", RGB(1, 1, 1)).Locked = true
	doc.AddLayer("hidden", RGB(1, 1, 1)).Visible = false

	onLocked := NewLine(Pt(0, 0), Pt(10, 0))
	onLocked.Attrs().Layer = "locked"
	doc.AddEntity(onLocked)

	onHidden := NewLine(Pt(0, 5), Pt(10, 5))
	onHidden.Attrs().Layer = "hidden"
	doc.AddEntity(onHidden)

	if Pick(doc, cam, Pt(5, 0)) != nil {
		t.Error("entities on locked layers must not pick")
	}
	if Pick(doc, cam, Pt(5, 5)) != nil {
		t.Error("entities on hidden layers must not pick")
	}
	if got := RectSelect(doc, Pt(-5, -5), Pt(20, 20), true); len(got) != 0 {
		t.Errorf("rect select caught %d entities on locked/hidden layers", len(got))
	}
}

func TestPickInvisibleEntity(t *testing.T) {
	doc := NewDocument()
	cam := NewCamera()
	e := doc.AddEntity(NewLine(Pt(0, 0), Pt(10, 0)))
	e.Attrs().Visible = false
	if Pick(doc, cam, Pt(5, 0)) != nil {
		t.Error("invisible entities must not pick")
	}
}

func TestWindowVersusCrossingSelect(t *testing.T) {
	doc := NewDocument()
	inside := doc.AddEntity(NewCircle(Pt(20, 20), 5))
	straddling := doc.AddEntity(NewRectangle(Pt(40, 10), Pt(80, 30)))
	outside := doc.AddEntity(NewCircle(Pt(200, 200), 5))
	_ = outside

	// The select box contains the circle fully and cuts the rectangle.
	a, b := Pt(0, 0), Pt(50, 50)

	window := RectSelect(doc, a, b, false)
	if len(window) != 1 || window[0] != inside {
		t.Errorf("window select = %d entities, want only the contained circle", len(window))
	}

	crossing := RectSelect(doc, a, b, true)
	if len(crossing) != 2 {
		t.Fatalf("crossing select = %d entities, want 2", len(crossing))
	}
	if crossing[0] != inside || crossing[1] != straddling {
		t.Error("crossing select should keep document order and include the straddling rectangle")
	}
}

func TestDragSelectDirectionConvention(t *testing.T) {
	doc := NewDocument()
	doc.AddEntity(NewRectangle(Pt(40, 10), Pt(80, 30)))

	// Left-to-right drag: window mode, straddling rectangle excluded.
	if got := DragSelect(doc, Pt(0, 0), Pt(50, 50)); len(got) != 0 {
		t.Errorf("left-to-right drag selected %d, want 0 (window mode)", len(got))
	}
	// Right-to-left drag: crossing mode, straddling rectangle included.
	if got := DragSelect(doc, Pt(50, 50), Pt(0, 0)); len(got) != 1 {
		t.Errorf("right-to-left drag selected %d, want 1 (crossing mode)", len(got))
	}
}
