package draft

import "math"

// Grid draws the adaptive reference grid: minor lines, major lines at
// ten times the minor spacing, and the two origin axes, all clipped to
// the visible world rectangle and stroked at a constant on-screen width.
type Grid struct {
	MinorColor RGBA
	MajorColor RGBA
	AxisXColor RGBA
	AxisYColor RGBA
}

// NewGrid creates a grid with the default color scheme.
func NewGrid() *Grid {
	return &Grid{
		MinorColor: RGB(0.16, 0.16, 0.18),
		MajorColor: RGB(0.24, 0.24, 0.27),
		AxisXColor: RGB(0.55, 0.22, 0.22),
		AxisYColor: RGB(0.22, 0.45, 0.22),
	}
}

// minorSpacing selects the minor grid spacing for a visible world width.
// Wider views get coarser grids.
func minorSpacing(worldWidth float64) float64 {
	switch {
	case worldWidth < 100:
		return 1
	case worldWidth < 1000:
		return 5
	case worldWidth < 5000:
		return 10
	case worldWidth < 25000:
		return 50
	default:
		return 100
	}
}

// visibleWorldRect maps the viewport corners into world space.
func visibleWorldRect(cam *Camera, viewportW, viewportH float64) Rect {
	a := cam.ScreenToWorld(Point{X: 0, Y: 0})
	b := cam.ScreenToWorld(Point{X: viewportW, Y: viewportH})
	return RectFromCorners(a, b)
}

// Draw renders the grid for the current camera view. The surface is
// expected to carry the camera transform already.
func (g *Grid) Draw(s Surface, cam *Camera, viewportW, viewportH float64) {
	visible := visibleWorldRect(cam, viewportW, viewportH)
	minor := minorSpacing(visible.Width())
	major := minor * 10

	// Major lines overdraw coinciding minor lines.
	g.drawLines(s, cam, visible, minor, g.MinorColor)
	g.drawLines(s, cam, visible, major, g.MajorColor)

	width := 1.5 / cam.Scale()
	s.SetLineWidth(width)
	if visible.Min.Y <= 0 && visible.Max.Y >= 0 {
		s.SetColor(g.AxisXColor)
		s.MoveTo(visible.Min.X, 0)
		s.LineTo(visible.Max.X, 0)
		s.Stroke()
	}
	if visible.Min.X <= 0 && visible.Max.X >= 0 {
		s.SetColor(g.AxisYColor)
		s.MoveTo(0, visible.Min.Y)
		s.LineTo(0, visible.Max.Y)
		s.Stroke()
	}
}

// drawLines strokes all grid lines at the given spacing inside the
// visible rectangle as one batched path.
func (g *Grid) drawLines(s Surface, cam *Camera, visible Rect, spacing float64, col RGBA) {
	s.SetColor(col)
	s.SetLineWidth(1 / cam.Scale())
	for x := math.Floor(visible.Min.X/spacing) * spacing; x <= visible.Max.X; x += spacing {
		s.MoveTo(x, visible.Min.Y)
		s.LineTo(x, visible.Max.Y)
	}
	for y := math.Floor(visible.Min.Y/spacing) * spacing; y <= visible.Max.Y; y += spacing {
		s.MoveTo(visible.Min.X, y)
		s.LineTo(visible.Max.X, y)
	}
	s.Stroke()
}
