package draft

// Tool is the active editing tool's preview strategy. The frame renderer
// invokes Preview once per frame after entities and overlays so the tool
// can draw its transient rubber-band geometry. Commit and Cancel bound
// the tool's lifecycle and are driven by the input layer, not the
// renderer.
type Tool interface {
	Preview(s Surface, cam *Camera)
	Commit()
	Cancel()
}

// FrameRenderer orchestrates the per-frame draw order:
// clear, camera transform, grid, entities back-to-front, selection
// grips, snap indicator, tool preview, crosshair.
type FrameRenderer struct {
	background     RGBA
	selectionColor RGBA
	gripColor      RGBA
	snapColor      RGBA
	crosshairColor RGBA
	gripPixels     float64
	grid           *Grid
	tool           Tool
}

// NewFrameRenderer creates a renderer with the default dark scheme.
// Behavior is customized through RendererOptions.
func NewFrameRenderer(opts ...RendererOption) *FrameRenderer {
	r := &FrameRenderer{
		background:     RGB(0.07, 0.07, 0.09),
		selectionColor: RGB(0.2, 0.6, 1),
		gripColor:      RGB(0.2, 0.6, 1),
		snapColor:      RGB(1, 0.8, 0.2),
		crosshairColor: RGB(0.5, 0.5, 0.5),
		gripPixels:     6,
		grid:           NewGrid(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetTool installs the active tool's preview strategy; nil removes it.
func (r *FrameRenderer) SetTool(t Tool) {
	r.tool = t
}

// effectiveColor resolves the drawing color for an entity: selection
// state first, then the entity's own override, then the layer color,
// then the hardcoded default.
func (r *FrameRenderer) effectiveColor(doc *Document, e Entity) RGBA {
	a := e.Attrs()
	switch {
	case a.Selected:
		return r.selectionColor
	case a.Color != nil:
		return *a.Color
	default:
		if layer := doc.Layer(a.Layer); layer != nil {
			return layer.Color
		}
		return DefaultEntityColor
	}
}

// RenderFrame draws one full frame. cursor is the current cursor
// position in world coordinates; snap may be nil when no snap indicator
// should be drawn.
func (r *FrameRenderer) RenderFrame(s Surface, doc *Document, cam *Camera, snap *Snapper, cursor Point) {
	w, h := s.Size()
	s.Clear(r.background)
	s.SetTransform(cam.Matrix())

	r.grid.Draw(s, cam, w, h)
	r.drawEntities(s, doc, cam)
	r.drawGrips(s, doc, cam)
	if snap != nil {
		r.drawSnapIndicator(s, cam, snap.Last())
	}
	if r.tool != nil {
		r.tool.Preview(s, cam)
	}
	r.drawCrosshair(s, cam, cursor, w, h)
}

// RenderScaled renders the document at a scale multiple of the current
// view, the export path for high-resolution output. The camera is
// mutated for the duration of the render and restored on all exit paths,
// including a panicking surface. Transient overlays (grips, snap
// indicator, crosshair, tool preview) are not exported.
func (r *FrameRenderer) RenderScaled(s Surface, doc *Document, cam *Camera, factor float64) {
	saved := *cam
	defer func() { *cam = saved }()

	cam.tx *= factor
	cam.ty *= factor
	cam.scale *= factor

	w, h := s.Size()
	s.Clear(r.background)
	s.SetTransform(cam.Matrix())
	r.grid.Draw(s, cam, w, h)
	r.drawEntities(s, doc, cam)
}

// drawEntities renders every visible entity in document order
// (back-to-front). Entities on hidden layers are skipped entirely;
// locked layers still render.
func (r *FrameRenderer) drawEntities(s Surface, doc *Document, cam *Camera) {
	for _, e := range doc.Entities() {
		a := e.Attrs()
		if !a.Visible || !doc.Layer(a.Layer).Visible {
			continue
		}
		e.Draw(s, cam, r.effectiveColor(doc, e))
	}
}

// drawGrips draws selection handles for selected entities as filled
// squares with a fixed on-screen size.
func (r *FrameRenderer) drawGrips(s Surface, doc *Document, cam *Camera) {
	half := r.gripPixels / 2 / cam.Scale()
	s.SetColor(r.gripColor)
	for _, e := range doc.Entities() {
		a := e.Attrs()
		if !a.Selected || !a.Visible || !doc.Layer(a.Layer).Visible {
			continue
		}
		for _, p := range e.GripPoints() {
			squarePath(s, p, half)
		}
		for _, p := range e.MidPoints() {
			squarePath(s, p, half)
		}
		s.Fill()
	}
}

// drawSnapIndicator marks the last snap resolution: a square outline for
// endpoint snaps, a diamond outline for midpoint snaps, nothing for grid
// or unsnapped positions.
func (r *FrameRenderer) drawSnapIndicator(s Surface, cam *Camera, last SnapResult) {
	half := 5 / cam.Scale()
	s.SetColor(r.snapColor)
	s.SetLineWidth(1.5 / cam.Scale())
	switch last.Kind {
	case SnapEndpoint:
		squarePath(s, last.Point, half)
		s.Stroke()
	case SnapMidpoint:
		p := last.Point
		s.MoveTo(p.X, p.Y-half)
		s.LineTo(p.X+half, p.Y)
		s.LineTo(p.X, p.Y+half)
		s.LineTo(p.X-half, p.Y)
		s.ClosePath()
		s.Stroke()
	}
}

// drawCrosshair draws a dashed cross spanning the visible world
// rectangle through the cursor.
func (r *FrameRenderer) drawCrosshair(s Surface, cam *Camera, cursor Point, viewportW, viewportH float64) {
	visible := visibleWorldRect(cam, viewportW, viewportH)
	s.SetColor(r.crosshairColor)
	s.SetLineWidth(1 / cam.Scale())
	s.SetDash(4/cam.Scale(), 4/cam.Scale())
	s.MoveTo(visible.Min.X, cursor.Y)
	s.LineTo(visible.Max.X, cursor.Y)
	s.MoveTo(cursor.X, visible.Min.Y)
	s.LineTo(cursor.X, visible.Max.Y)
	s.Stroke()
	s.ClearDash()
}

// squarePath appends an axis-aligned square centered on p to the current
// path.
func squarePath(s Surface, p Point, half float64) {
	s.MoveTo(p.X-half, p.Y-half)
	s.LineTo(p.X+half, p.Y-half)
	s.LineTo(p.X+half, p.Y+half)
	s.LineTo(p.X-half, p.Y+half)
	s.ClosePath()
}
