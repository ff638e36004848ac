package draft

func init() {
	RegisterEntity("polyline", func() Entity { return &Polyline{} })
}

// Polyline is an ordered sequence of world points joined by straight
// segments, optionally closed back to the first point.
type Polyline struct {
	attrs Attrs

	Points []Point
	Closed bool
}

// NewPolyline creates a polyline over the given vertices.
func NewPolyline(points []Point, closed bool) *Polyline {
	return &Polyline{attrs: Attrs{Visible: true}, Points: points, Closed: closed}
}

func (pl *Polyline) Type() string { return "polyline" }
func (pl *Polyline) Attrs() *Attrs { return &pl.attrs }

func (pl *Polyline) Draw(s Surface, cam *Camera, col RGBA) {
	if len(pl.Points) < 2 {
		return
	}
	s.SetColor(col)
	s.SetLineWidth(pl.attrs.strokeWidth(cam))
	s.MoveTo(pl.Points[0].X, pl.Points[0].Y)
	for _, p := range pl.Points[1:] {
		s.LineTo(p.X, p.Y)
	}
	if pl.Closed {
		s.ClosePath()
	}
	s.Stroke()
}

// GripPoints returns every vertex.
func (pl *Polyline) GripPoints() []Point {
	grips := make([]Point, len(pl.Points))
	copy(grips, pl.Points)
	return grips
}

// MidPoints returns the midpoint of every segment, including the closing
// segment of a closed polyline.
func (pl *Polyline) MidPoints() []Point {
	return segmentMidpoints(pl.Points, pl.Closed)
}

func (pl *Polyline) BoundingBox() Rect {
	return RectOf(pl.Points...)
}

func (pl *Polyline) HitTest(p Point, tol float64) bool {
	return polylineHit(p, pl.Points, pl.Closed, tol)
}

func (pl *Polyline) Encode() map[string]any {
	m := map[string]any{
		"points": encodePoints(pl.Points),
		"closed": pl.Closed,
	}
	pl.attrs.encodeInto(m, pl.Type())
	return m
}

func (pl *Polyline) Decode(data map[string]any) error {
	pl.attrs.decodeFrom(data)
	if points, ok := decodePoints(data["points"]); ok {
		pl.Points = points
	}
	if closed, ok := data["closed"].(bool); ok {
		pl.Closed = closed
	}
	return nil
}

// polylineHit reports whether p lies within tol of any segment of the
// vertex sequence.
func polylineHit(p Point, points []Point, closed bool, tol float64) bool {
	if len(points) == 0 {
		return false
	}
	if len(points) == 1 {
		return p.Distance(points[0]) <= tol
	}
	for i := 0; i < len(points)-1; i++ {
		if segmentDistance(p, points[i], points[i+1]) <= tol {
			return true
		}
	}
	if closed && segmentDistance(p, points[len(points)-1], points[0]) <= tol {
		return true
	}
	return false
}

// segmentMidpoints returns the midpoints of consecutive vertex pairs.
func segmentMidpoints(points []Point, closed bool) []Point {
	if len(points) < 2 {
		return nil
	}
	mids := make([]Point, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		mids = append(mids, Mid(points[i], points[i+1]))
	}
	if closed {
		mids = append(mids, Mid(points[len(points)-1], points[0]))
	}
	return mids
}
