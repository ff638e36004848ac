package draft

// Surface is the minimal immediate-mode vector drawing API the engine
// renders through. It is deliberately decoupled from any windowing or
// canvas implementation: the raster subpackage provides a software
// implementation, the recording subpackage a command recorder, and UI
// frontends adapt their own canvas to it.
//
// Path construction follows the usual current-point model: MoveTo starts
// a subpath, LineTo/QuadTo/Arc extend it, ClosePath joins back to the
// subpath start. Stroke and Fill consume and clear the accumulated path.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h float64)

	// Clear fills the whole surface with a color and resets the path.
	Clear(c RGBA)

	// SetTransform replaces the current transformation matrix applied
	// to subsequently constructed path points.
	SetTransform(m Matrix)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	// QuadTo draws a quadratic Bezier curve from the current point.
	QuadTo(cx, cy, x, y float64)
	// Arc appends a circular arc centered on (cx, cy) with the given
	// radius, from startAngle to endAngle in radians, counter-clockwise
	// in world coordinates when endAngle > startAngle.
	Arc(cx, cy, r, startAngle, endAngle float64)
	ClosePath()

	SetColor(c RGBA)
	SetLineWidth(w float64)
	// SetDash sets the stroke dash pattern as alternating dash/gap
	// lengths in transformed units. An empty call is a no-op.
	SetDash(lengths ...float64)
	ClearDash()

	Stroke()
	Fill()

	// DrawText renders a string with its anchor at (x, y) and the given
	// height, all in transformed units. Implementations may approximate
	// glyph metrics; exact text layout is not part of this contract.
	DrawText(text string, x, y, height float64)
}
