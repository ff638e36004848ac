package draft

func init() {
	RegisterEntity("line", func() Entity { return &Line{} })
}

// Line is a straight segment between two world points.
type Line struct {
	attrs Attrs

	Start Point
	End   Point
}

// NewLine creates a line between two points.
func NewLine(start, end Point) *Line {
	return &Line{attrs: Attrs{Visible: true}, Start: start, End: end}
}

func (l *Line) Type() string { return "line" }
func (l *Line) Attrs() *Attrs { return &l.attrs }

func (l *Line) Draw(s Surface, cam *Camera, col RGBA) {
	s.SetColor(col)
	s.SetLineWidth(l.attrs.strokeWidth(cam))
	s.MoveTo(l.Start.X, l.Start.Y)
	s.LineTo(l.End.X, l.End.Y)
	s.Stroke()
}

func (l *Line) GripPoints() []Point {
	return []Point{l.Start, l.End}
}

func (l *Line) MidPoints() []Point {
	return []Point{Mid(l.Start, l.End)}
}

func (l *Line) BoundingBox() Rect {
	return RectOf(l.Start, l.End)
}

func (l *Line) HitTest(p Point, tol float64) bool {
	return segmentDistance(p, l.Start, l.End) <= tol
}

func (l *Line) Encode() map[string]any {
	m := map[string]any{
		"start": encodePoint(l.Start),
		"end":   encodePoint(l.End),
	}
	l.attrs.encodeInto(m, l.Type())
	return m
}

func (l *Line) Decode(data map[string]any) error {
	l.attrs.decodeFrom(data)
	if p, ok := decodePoint(data["start"]); ok {
		l.Start = p
	}
	if p, ok := decodePoint(data["end"]); ok {
		l.End = p
	}
	return nil
}
