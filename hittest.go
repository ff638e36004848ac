package draft

// Default pick tolerance in screen pixels.
const defaultPickPixels = 5

// pickable reports whether an entity participates in hit-testing:
// it must be visible, on a visible layer, and its layer must not be
// locked. Locked and hidden layers still render; they just cannot be
// picked or edited.
func pickable(doc *Document, e Entity) bool {
	a := e.Attrs()
	if !a.Visible {
		return false
	}
	layer := doc.Layer(a.Layer)
	return layer.Visible && !layer.Locked
}

// Pick returns the topmost pickable entity within the default pick
// tolerance of the world point, or nil. The tolerance is fixed in screen
// pixels and divided by the camera scale so click precision is the same
// at every zoom level.
func Pick(doc *Document, cam *Camera, world Point) Entity {
	return PickWithin(doc, cam, world, defaultPickPixels)
}

// PickWithin is Pick with an explicit pixel tolerance.
func PickWithin(doc *Document, cam *Camera, world Point, pixels float64) Entity {
	tol := pixels / cam.Scale()
	entities := doc.Entities()
	// Reverse z-order: the entity drawn last wins ties.
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		if !pickable(doc, e) {
			continue
		}
		if e.HitTest(world, tol) {
			return e
		}
	}
	return nil
}

// RectSelect returns the pickable entities selected by the rectangle
// spanned by two world corners. In window mode (crossing=false) an
// entity qualifies only if its bounding box is fully contained; in
// crossing mode any bounding-box overlap qualifies. Results keep
// document order.
func RectSelect(doc *Document, a, b Point, crossing bool) []Entity {
	box := RectFromCorners(a, b)
	var hits []Entity
	for _, e := range doc.Entities() {
		if !pickable(doc, e) {
			continue
		}
		bbox := e.BoundingBox()
		if crossing {
			if box.Overlaps(bbox) {
				hits = append(hits, e)
			}
		} else if box.ContainsRect(bbox) {
			hits = append(hits, e)
		}
	}
	return hits
}

// DragSelect applies the CAD drag convention: dragging left-to-right is
// a window select, right-to-left a crossing select. start and end are
// the world points where the drag began and finished.
func DragSelect(doc *Document, start, end Point) []Entity {
	crossing := end.X < start.X
	return RectSelect(doc, start, end, crossing)
}
