package draft

import "math"

func init() {
	RegisterEntity("arc", func() Entity { return &Arc{} })
}

// Arc is a circular arc from StartAngle to EndAngle (radians, measured
// counter-clockwise from the positive X axis). Arcs whose start angle is
// greater than their end angle wrap through zero.
type Arc struct {
	attrs Attrs

	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// NewArc creates an arc.
func NewArc(center Point, radius, startAngle, endAngle float64) *Arc {
	return &Arc{attrs: Attrs{Visible: true}, Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
}

func (a *Arc) Type() string { return "arc" }
func (a *Arc) Attrs() *Attrs { return &a.attrs }

func (a *Arc) Draw(s Surface, cam *Camera, col RGBA) {
	s.SetColor(col)
	s.SetLineWidth(a.attrs.strokeWidth(cam))
	end := a.EndAngle
	if end < a.StartAngle {
		end += 2 * math.Pi
	}
	s.Arc(a.Center.X, a.Center.Y, a.Radius, a.StartAngle, end)
	s.Stroke()
}

// pointAt returns the point on the arc's circle at the given angle.
func (a *Arc) pointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// sweep returns the positive angular extent of the arc.
func (a *Arc) sweep() float64 {
	d := a.EndAngle - a.StartAngle
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// GripPoints returns the center and both arc endpoints.
func (a *Arc) GripPoints() []Point {
	return []Point{a.Center, a.pointAt(a.StartAngle), a.pointAt(a.EndAngle)}
}

// MidPoints returns the point halfway along the arc.
func (a *Arc) MidPoints() []Point {
	return []Point{a.pointAt(a.StartAngle + a.sweep()/2)}
}

// containsAngle reports whether an angle lies within the arc's sweep,
// handling the wrap-around case where the start angle exceeds the end.
func (a *Arc) containsAngle(angle float64) bool {
	angle = normalizeAngle(angle)
	start := normalizeAngle(a.StartAngle)
	end := normalizeAngle(a.EndAngle)
	if start > end {
		return angle >= start || angle <= end
	}
	return angle >= start && angle <= end
}

func (a *Arc) BoundingBox() Rect {
	points := []Point{a.pointAt(a.StartAngle), a.pointAt(a.EndAngle)}
	// Quadrant extremes count only when the sweep passes through them.
	for _, q := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if a.containsAngle(q) {
			points = append(points, a.pointAt(q))
		}
	}
	return RectOf(points...)
}

// HitTest combines the circle's radial proximity test with angular
// containment.
func (a *Arc) HitTest(p Point, tol float64) bool {
	if math.Abs(p.Distance(a.Center)-a.Radius) > tol {
		return false
	}
	return a.containsAngle(math.Atan2(p.Y-a.Center.Y, p.X-a.Center.X))
}

func (a *Arc) Encode() map[string]any {
	m := map[string]any{
		"center":     encodePoint(a.Center),
		"radius":     a.Radius,
		"startAngle": a.StartAngle,
		"endAngle":   a.EndAngle,
	}
	a.attrs.encodeInto(m, a.Type())
	return m
}

func (a *Arc) Decode(data map[string]any) error {
	a.attrs.decodeFrom(data)
	if p, ok := decodePoint(data["center"]); ok {
		a.Center = p
	}
	if v, ok := num(data["radius"]); ok {
		a.Radius = v
	}
	if v, ok := num(data["startAngle"]); ok {
		a.StartAngle = v
	}
	if v, ok := num(data["endAngle"]); ok {
		a.EndAngle = v
	}
	return nil
}

// normalizeAngle maps an angle into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
