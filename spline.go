package draft

func init() {
	RegisterEntity("spline", func() Entity { return &Spline{} })
}

// Spline is a smoothed curve through an ordered point sequence, rendered
// with the midpoint technique: each interior point acts as the control
// point of a quadratic curve targeting the midpoint to its successor,
// with straight joins at both ends. Hit testing and bounds use the
// control polygon, which the curve never leaves.
type Spline struct {
	attrs Attrs

	Points []Point
	Closed bool
}

// NewSpline creates a spline through the given points.
func NewSpline(points []Point, closed bool) *Spline {
	return &Spline{attrs: Attrs{Visible: true}, Points: points, Closed: closed}
}

func (sp *Spline) Type() string { return "spline" }
func (sp *Spline) Attrs() *Attrs { return &sp.attrs }

func (sp *Spline) Draw(s Surface, cam *Camera, col RGBA) {
	if len(sp.Points) < 2 {
		return
	}
	s.SetColor(col)
	s.SetLineWidth(sp.attrs.strokeWidth(cam))
	pts := sp.Points
	s.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) == 2 {
		s.LineTo(pts[1].X, pts[1].Y)
	} else {
		for i := 1; i < len(pts)-1; i++ {
			target := Mid(pts[i], pts[i+1])
			s.QuadTo(pts[i].X, pts[i].Y, target.X, target.Y)
		}
		last := pts[len(pts)-1]
		s.LineTo(last.X, last.Y)
	}
	if sp.Closed {
		s.ClosePath()
	}
	s.Stroke()
}

// GripPoints returns every control vertex.
func (sp *Spline) GripPoints() []Point {
	grips := make([]Point, len(sp.Points))
	copy(grips, sp.Points)
	return grips
}

// MidPoints returns the midpoints of the control polygon segments.
func (sp *Spline) MidPoints() []Point {
	return segmentMidpoints(sp.Points, sp.Closed)
}

func (sp *Spline) BoundingBox() Rect {
	return RectOf(sp.Points...)
}

func (sp *Spline) HitTest(p Point, tol float64) bool {
	return polylineHit(p, sp.Points, sp.Closed, tol)
}

func (sp *Spline) Encode() map[string]any {
	m := map[string]any{
		"points": encodePoints(sp.Points),
		"closed": sp.Closed,
	}
	sp.attrs.encodeInto(m, sp.Type())
	return m
}

func (sp *Spline) Decode(data map[string]any) error {
	sp.attrs.decodeFrom(data)
	if points, ok := decodePoints(data["points"]); ok {
		sp.Points = points
	}
	if closed, ok := data["closed"].(bool); ok {
		sp.Closed = closed
	}
	return nil
}
