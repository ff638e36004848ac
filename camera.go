package draft

// Zoom step factor per wheel notch. Zooming out uses the reciprocal.
const zoomStep = 1.1

// Padding in screen pixels added around extents by FitExtents.
const fitPadding = 40.0

// Camera maps between world coordinates (the infinite drawing plane)
// and screen coordinates (viewport pixels) with a uniform scale and a
// translation:
//
//	screen = world*scale + translation
type Camera struct {
	tx, ty   float64
	scale    float64
	minScale float64
	maxScale float64
}

// NewCamera creates a camera at the origin with scale 1 and the default
// scale bounds [0.01, 100].
func NewCamera() *Camera {
	return &Camera{scale: 1, minScale: 0.01, maxScale: 100}
}

// Scale returns the current uniform scale (screen pixels per world unit).
func (c *Camera) Scale() float64 {
	return c.scale
}

// Translation returns the current screen-space translation.
func (c *Camera) Translation() Point {
	return Point{X: c.tx, Y: c.ty}
}

// SetScaleBounds clamps future zoom operations to [min, max].
func (c *Camera) SetScaleBounds(min, max float64) {
	c.minScale = min
	c.maxScale = max
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(p Point) Point {
	return Point{X: p.X*c.scale + c.tx, Y: p.Y*c.scale + c.ty}
}

// ScreenToWorld converts a screen point to world coordinates.
// It is the exact inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(p Point) Point {
	return Point{X: (p.X - c.tx) / c.scale, Y: (p.Y - c.ty) / c.scale}
}

// Matrix returns the world-to-screen transform for Surface.SetTransform.
func (c *Camera) Matrix() Matrix {
	return Translate(c.tx, c.ty).Multiply(Scale(c.scale, c.scale))
}

// Zoom multiplies the scale by the zoom step (direction > 0 zooms in,
// direction <= 0 zooms out), clamps it to the scale bounds, and adjusts
// the translation so the world point under the anchor screen coordinate
// stays under that same screen coordinate:
//
//	translation' = anchor - (anchor - translation) * (scale'/scale)
func (c *Camera) Zoom(direction int, anchor Point) {
	factor := zoomStep
	if direction <= 0 {
		factor = 1 / zoomStep
	}
	newScale := c.scale * factor
	if newScale < c.minScale {
		newScale = c.minScale
	}
	if newScale > c.maxScale {
		newScale = c.maxScale
	}
	ratio := newScale / c.scale
	c.tx = anchor.X - (anchor.X-c.tx)*ratio
	c.ty = anchor.Y - (anchor.Y-c.ty)*ratio
	c.scale = newScale
}

// Pan translates the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.tx += dx
	c.ty += dy
}

// FitExtents positions the camera so bbox, plus a fixed pixel padding,
// fills the viewport and is centered. Degenerate extents (zero width or
// height) are treated as extent 1 so the scale stays finite.
func (c *Camera) FitExtents(bbox Rect, viewportW, viewportH float64) {
	w := bbox.Width()
	h := bbox.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	sx := (viewportW - 2*fitPadding) / w
	sy := (viewportH - 2*fitPadding) / h
	scale := sx
	if sy < scale {
		scale = sy
	}
	if scale < c.minScale {
		scale = c.minScale
	}
	if scale > c.maxScale {
		scale = c.maxScale
	}
	c.scale = scale

	center := bbox.Center()
	c.tx = viewportW/2 - center.X*scale
	c.ty = viewportH/2 - center.Y*scale
}
