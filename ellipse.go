package draft

import "math"

func init() {
	RegisterEntity("ellipse", func() Entity { return &Ellipse{} })
}

// Flattening resolution for ellipse outlines.
const ellipseSegments = 64

// Ellipse is an axis-aligned ellipse with radii RX and RY.
type Ellipse struct {
	attrs Attrs

	Center Point
	RX     float64
	RY     float64
}

// NewEllipse creates an ellipse.
func NewEllipse(center Point, rx, ry float64) *Ellipse {
	return &Ellipse{attrs: Attrs{Visible: true}, Center: center, RX: rx, RY: ry}
}

func (e *Ellipse) Type() string { return "ellipse" }
func (e *Ellipse) Attrs() *Attrs { return &e.attrs }

func (e *Ellipse) Draw(s Surface, cam *Camera, col RGBA) {
	s.SetColor(col)
	s.SetLineWidth(e.attrs.strokeWidth(cam))
	for i := 0; i <= ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x := e.Center.X + e.RX*math.Cos(a)
		y := e.Center.Y + e.RY*math.Sin(a)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.ClosePath()
	s.Stroke()
}

// GripPoints returns the center plus the four axis extremes.
func (e *Ellipse) GripPoints() []Point {
	return []Point{
		e.Center,
		{X: e.Center.X + e.RX, Y: e.Center.Y},
		{X: e.Center.X - e.RX, Y: e.Center.Y},
		{X: e.Center.X, Y: e.Center.Y + e.RY},
		{X: e.Center.X, Y: e.Center.Y - e.RY},
	}
}

func (e *Ellipse) MidPoints() []Point { return nil }

func (e *Ellipse) BoundingBox() Rect {
	return Rect{
		Min: Point{X: e.Center.X - e.RX, Y: e.Center.Y - e.RY},
		Max: Point{X: e.Center.X + e.RX, Y: e.Center.Y + e.RY},
	}
}

// HitTest maps the point into the ellipse's unit-circle space and tests
// its normalized distance against 1, rescaled by the smaller radius so
// the tolerance keeps world-unit meaning.
func (e *Ellipse) HitTest(p Point, tol float64) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	nx := (p.X - e.Center.X) / e.RX
	ny := (p.Y - e.Center.Y) / e.RY
	norm := math.Sqrt(nx*nx + ny*ny)
	return math.Abs(norm-1)*math.Min(e.RX, e.RY) <= tol
}

func (e *Ellipse) Encode() map[string]any {
	m := map[string]any{
		"center": encodePoint(e.Center),
		"rx":     e.RX,
		"ry":     e.RY,
	}
	e.attrs.encodeInto(m, e.Type())
	return m
}

func (e *Ellipse) Decode(data map[string]any) error {
	e.attrs.decodeFrom(data)
	if p, ok := decodePoint(data["center"]); ok {
		e.Center = p
	}
	if v, ok := num(data["rx"]); ok {
		e.RX = v
	}
	if v, ok := num(data["ry"]); ok {
		e.RY = v
	}
	return nil
}
