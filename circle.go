package draft

import "math"

func init() {
	RegisterEntity("circle", func() Entity { return &Circle{} })
}

// Circle is a full circle defined by center and radius.
type Circle struct {
	attrs Attrs

	Center Point
	Radius float64
}

// NewCircle creates a circle.
func NewCircle(center Point, radius float64) *Circle {
	return &Circle{attrs: Attrs{Visible: true}, Center: center, Radius: radius}
}

func (c *Circle) Type() string { return "circle" }
func (c *Circle) Attrs() *Attrs { return &c.attrs }

func (c *Circle) Draw(s Surface, cam *Camera, col RGBA) {
	s.SetColor(col)
	s.SetLineWidth(c.attrs.strokeWidth(cam))
	s.Arc(c.Center.X, c.Center.Y, c.Radius, 0, 2*math.Pi)
	s.Stroke()
}

// GripPoints returns the center plus the four cardinal quadrant points.
func (c *Circle) GripPoints() []Point {
	return []Point{
		c.Center,
		{X: c.Center.X + c.Radius, Y: c.Center.Y},
		{X: c.Center.X - c.Radius, Y: c.Center.Y},
		{X: c.Center.X, Y: c.Center.Y + c.Radius},
		{X: c.Center.X, Y: c.Center.Y - c.Radius},
	}
}

func (c *Circle) MidPoints() []Point { return nil }

func (c *Circle) BoundingBox() Rect {
	return Rect{
		Min: Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}

// HitTest is a radial proximity test against the circumference: the
// interior is deliberately not pick-able.
func (c *Circle) HitTest(p Point, tol float64) bool {
	return math.Abs(p.Distance(c.Center)-c.Radius) <= tol
}

func (c *Circle) Encode() map[string]any {
	m := map[string]any{
		"center": encodePoint(c.Center),
		"radius": c.Radius,
	}
	c.attrs.encodeInto(m, c.Type())
	return m
}

func (c *Circle) Decode(data map[string]any) error {
	c.attrs.decodeFrom(data)
	if p, ok := decodePoint(data["center"]); ok {
		c.Center = p
	}
	if r, ok := num(data["radius"]); ok {
		c.Radius = r
	}
	return nil
}
