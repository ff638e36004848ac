package draft

import "math"

func init() {
	RegisterEntity("rectangle", func() Entity { return &Rectangle{} })
}

// Rectangle is an axis-aligned rectangle. Only its outline is geometry:
// hit tests respond to the four edges, never to the interior, matching
// the outline-only picking convention of CAD tools.
type Rectangle struct {
	attrs Attrs

	Bounds Rect
}

// NewRectangle creates a rectangle from two arbitrary corner points.
func NewRectangle(a, b Point) *Rectangle {
	return &Rectangle{attrs: Attrs{Visible: true}, Bounds: RectFromCorners(a, b)}
}

func (r *Rectangle) Type() string { return "rectangle" }
func (r *Rectangle) Attrs() *Attrs { return &r.attrs }

// corners returns the four corners in drawing order.
func (r *Rectangle) corners() [4]Point {
	return [4]Point{
		r.Bounds.Min,
		{X: r.Bounds.Max.X, Y: r.Bounds.Min.Y},
		r.Bounds.Max,
		{X: r.Bounds.Min.X, Y: r.Bounds.Max.Y},
	}
}

func (r *Rectangle) Draw(s Surface, cam *Camera, col RGBA) {
	s.SetColor(col)
	s.SetLineWidth(r.attrs.strokeWidth(cam))
	c := r.corners()
	s.MoveTo(c[0].X, c[0].Y)
	s.LineTo(c[1].X, c[1].Y)
	s.LineTo(c[2].X, c[2].Y)
	s.LineTo(c[3].X, c[3].Y)
	s.ClosePath()
	s.Stroke()
}

// GripPoints returns the four corners plus the centroid.
func (r *Rectangle) GripPoints() []Point {
	c := r.corners()
	return []Point{c[0], c[1], c[2], c[3], r.Bounds.Center()}
}

// MidPoints returns the midpoint of each edge.
func (r *Rectangle) MidPoints() []Point {
	c := r.corners()
	return []Point{
		Mid(c[0], c[1]),
		Mid(c[1], c[2]),
		Mid(c[2], c[3]),
		Mid(c[3], c[0]),
	}
}

func (r *Rectangle) BoundingBox() Rect {
	return r.Bounds
}

// HitTest accepts points within tol of one of the four edge lines and
// within the perpendicular span of that edge. Interior clicks miss.
func (r *Rectangle) HitTest(p Point, tol float64) bool {
	c := r.corners()
	for i := range c {
		if edgeHit(p, c[i], c[(i+1)%4], tol) {
			return true
		}
	}
	return false
}

// edgeHit tests proximity to the edge a-b: the perpendicular distance to
// the edge line must be within tol and the projection of p must fall
// inside the edge's span.
func edgeHit(p, a, b Point, tol float64) bool {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		return p.Distance(a) <= tol
	}
	ap := p.Sub(a)
	t := ap.Dot(ab) / (length * length)
	if t < 0 || t > 1 {
		return false
	}
	perp := math.Abs(ab.X*ap.Y-ab.Y*ap.X) / length
	return perp <= tol
}

func (r *Rectangle) Encode() map[string]any {
	m := map[string]any{
		"min": encodePoint(r.Bounds.Min),
		"max": encodePoint(r.Bounds.Max),
	}
	r.attrs.encodeInto(m, r.Type())
	return m
}

func (r *Rectangle) Decode(data map[string]any) error {
	r.attrs.decodeFrom(data)
	min, okMin := decodePoint(data["min"])
	max, okMax := decodePoint(data["max"])
	if okMin && okMax {
		r.Bounds = RectFromCorners(min, max)
	}
	return nil
}
