// Package raster is a software implementation of draft.Surface. It
// flattens paths into polylines, fills them with the scanline rasterizer
// in golang.org/x/image/vector, and writes pixels to an image.RGBA that
// can be shown, encoded as PNG, or diffed in tests.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gocad/draft"
)

// Flattening resolutions.
const (
	quadSegments      = 16
	arcSegmentsPerRev = 64
)

// Option configures a Surface during creation.
type Option func(*Surface)

// WithBackground clears the surface to a color at creation time instead
// of leaving it transparent.
func WithBackground(c draft.RGBA) Option {
	return func(s *Surface) { s.Clear(c) }
}

// subpath is a flattened run of device-space points.
type subpath struct {
	points []draft.Point
	closed bool
}

// Surface rasterizes draft drawing calls into an image.RGBA.
// It is not safe for concurrent use.
type Surface struct {
	img       *image.RGBA
	transform draft.Matrix

	paths   []subpath
	current subpath
	open    bool

	color     draft.RGBA
	lineWidth float64
	dash      []float64
}

// New creates a software surface of the given pixel size.
func New(w, h int, opts ...Option) *Surface {
	s := &Surface{
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		transform: draft.Identity(),
		lineWidth: 1,
	}
	draft.Logger().Debug("raster: surface created", "width", w, "height", h)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Image returns the backing image. The surface keeps writing to it.
func (s *Surface) Image() image.Image { return s.img }

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the current pixels to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, s.img)
}

// Size returns the pixel dimensions.
func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the surface with a color and drops any pending path.
func (s *Surface) Clear(c draft.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.Color()), image.Point{}, draw.Src)
	s.resetPath()
}

// SetTransform replaces the current transformation matrix.
func (s *Surface) SetTransform(m draft.Matrix) {
	s.transform = m
}

// scale returns the uniform scale factor of the current transform, used
// to convert line widths and dash lengths to device pixels.
func (s *Surface) scale() float64 {
	m := s.transform
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

func (s *Surface) device(x, y float64) draft.Point {
	return s.transform.TransformPoint(draft.Pt(x, y))
}

func (s *Surface) resetPath() {
	s.paths = nil
	s.current = subpath{}
	s.open = false
}

func (s *Surface) flushSubpath() {
	if s.open && len(s.current.points) > 1 {
		s.paths = append(s.paths, s.current)
	}
	s.current = subpath{}
	s.open = false
}

func (s *Surface) MoveTo(x, y float64) {
	s.flushSubpath()
	s.current = subpath{points: []draft.Point{s.device(x, y)}}
	s.open = true
}

func (s *Surface) LineTo(x, y float64) {
	if !s.open {
		s.MoveTo(x, y)
		return
	}
	s.current.points = append(s.current.points, s.device(x, y))
}

// QuadTo flattens the curve into line segments. Affine transforms map
// quadratics to quadratics, so flattening happens in device space.
func (s *Surface) QuadTo(cx, cy, x, y float64) {
	if !s.open {
		s.MoveTo(x, y)
		return
	}
	p0 := s.current.points[len(s.current.points)-1]
	p1 := s.device(cx, cy)
	p2 := s.device(x, y)
	for i := 1; i <= quadSegments; i++ {
		t := float64(i) / quadSegments
		u := 1 - t
		px := u*u*p0.X + 2*u*t*p1.X + t*t*p2.X
		py := u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y
		s.current.points = append(s.current.points, draft.Pt(px, py))
	}
}

// Arc flattens a circular arc in world space and transforms each vertex.
func (s *Surface) Arc(cx, cy, r, start, end float64) {
	sweep := end - start
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * arcSegmentsPerRev))
	if n < 8 {
		n = 8
	}
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		p := s.device(cx+r*math.Cos(a), cy+r*math.Sin(a))
		if i == 0 {
			if s.open {
				s.current.points = append(s.current.points, p)
			} else {
				s.current = subpath{points: []draft.Point{p}}
				s.open = true
			}
		} else {
			s.current.points = append(s.current.points, p)
		}
	}
}

func (s *Surface) ClosePath() {
	if s.open {
		s.current.closed = true
		s.flushSubpath()
	}
}

func (s *Surface) SetColor(c draft.RGBA) { s.color = c }

func (s *Surface) SetLineWidth(w float64) { s.lineWidth = w }

func (s *Surface) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		return
	}
	s.dash = append(s.dash[:0], lengths...)
}

func (s *Surface) ClearDash() { s.dash = nil }

// Fill rasterizes the accumulated subpaths as filled polygons and clears
// the path.
func (s *Surface) Fill() {
	s.flushSubpath()
	if len(s.paths) == 0 {
		return
	}
	b := s.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, sp := range s.paths {
		if len(sp.points) < 2 {
			continue
		}
		z.MoveTo(float32(sp.points[0].X), float32(sp.points[0].Y))
		for _, p := range sp.points[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	z.Draw(s.img, b, image.NewUniform(s.color.Color()), image.Point{})
	s.resetPath()
}

// Stroke rasterizes the accumulated subpaths as stroked polylines,
// applying the dash pattern, and clears the path.
func (s *Surface) Stroke() {
	s.flushSubpath()
	if len(s.paths) == 0 {
		return
	}
	scale := s.scale()
	width := s.lineWidth * scale
	if width < 1 {
		width = 1
	}
	var dash []float64
	for _, d := range s.dash {
		dash = append(dash, d*scale)
	}

	b := s.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, sp := range s.paths {
		points := sp.points
		if sp.closed && len(points) > 1 {
			points = append(append([]draft.Point(nil), points...), points[0])
		}
		for _, run := range dashSplit(points, dash) {
			strokePolyline(z, run, width)
		}
	}
	z.Draw(s.img, b, image.NewUniform(s.color.Color()), image.Point{})
	s.resetPath()
}

// DrawText renders a single line with the basicfont face, scaled to the
// requested height. The anchor (x, y) is the top-left corner in
// transformed units.
func (s *Surface) DrawText(text string, x, y, height float64) {
	if text == "" || height <= 0 {
		return
	}
	face := basicfont.Face7x13
	natural := face.Height // 13px

	// Render at natural size into a scratch image, then scale-blit.
	w := font.MeasureString(face, text).Ceil()
	if w <= 0 {
		return
	}
	scratch := image.NewRGBA(image.Rect(0, 0, w, natural))
	drawer := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(s.color.Color()),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	anchor := s.device(x, y)
	devHeight := height * s.scale()
	factor := devHeight / float64(natural)
	devWidth := float64(w) * factor

	x0 := int(math.Floor(anchor.X))
	y0 := int(math.Floor(anchor.Y))
	x1 := int(math.Ceil(anchor.X + devWidth))
	y1 := int(math.Ceil(anchor.Y + devHeight))
	bounds := s.img.Bounds()
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			if dx < bounds.Min.X || dx >= bounds.Max.X || dy < bounds.Min.Y || dy >= bounds.Max.Y {
				continue
			}
			sx := int(float64(dx-x0) / factor)
			sy := int(float64(dy-y0) / factor)
			if sx < 0 || sx >= w || sy < 0 || sy >= natural {
				continue
			}
			c := scratch.RGBAAt(sx, sy)
			if c.A == 0 {
				continue
			}
			s.img.Set(dx, dy, c)
		}
	}
}

// strokePolyline adds one quad per segment to the rasterizer. Butt caps,
// no joins: adjacent quads share segment endpoints, which is adequate
// for the thin strokes CAD views use.
func strokePolyline(z *vector.Rasterizer, points []draft.Point, width float64) {
	half := width / 2
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		d := b.Sub(a)
		length := d.Length()
		if length == 0 {
			continue
		}
		nx := -d.Y / length * half
		ny := d.X / length * half
		z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		z.ClosePath()
	}
}

// dashSplit cuts a polyline into the "on" runs of a dash pattern. An
// empty pattern returns the polyline unchanged.
func dashSplit(points []draft.Point, dash []float64) [][]draft.Point {
	if len(dash) == 0 || len(points) < 2 {
		return [][]draft.Point{points}
	}
	total := 0.0
	for _, d := range dash {
		total += d
	}
	if total <= 0 {
		return [][]draft.Point{points}
	}

	var runs [][]draft.Point
	var run []draft.Point
	idx := 0 // position in the dash pattern
	remaining := dash[0]
	on := true

	flush := func() {
		if on && len(run) > 1 {
			runs = append(runs, run)
		}
		run = nil
	}

	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}
		dir := b.Sub(a).Mul(1 / segLen)
		pos := 0.0
		if on && len(run) == 0 {
			run = append(run, a)
		}
		for pos < segLen {
			step := math.Min(remaining, segLen-pos)
			pos += step
			remaining -= step
			cut := a.Add(dir.Mul(pos))
			if remaining <= 1e-9 {
				if on {
					run = append(run, cut)
					flush()
				} else {
					run = []draft.Point{cut}
				}
				on = !on
				idx = (idx + 1) % len(dash)
				remaining = dash[idx]
			} else if pos >= segLen && on {
				run = append(run, cut)
			}
		}
	}
	flush()
	return runs
}

var _ draft.Surface = (*Surface)(nil)
