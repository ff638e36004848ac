package draft

// RendererOption configures a FrameRenderer during creation.
//
// Example:
//
//	r := draft.NewFrameRenderer(
//	    draft.WithBackground(draft.RGB(1, 1, 1)),
//	    draft.WithGripSize(8),
//	)
type RendererOption func(*FrameRenderer)

// WithBackground sets the frame clear color.
func WithBackground(c RGBA) RendererOption {
	return func(r *FrameRenderer) { r.background = c }
}

// WithSelectionColor sets the color selected entities and grips render in.
func WithSelectionColor(c RGBA) RendererOption {
	return func(r *FrameRenderer) {
		r.selectionColor = c
		r.gripColor = c
	}
}

// WithSnapColor sets the snap indicator color.
func WithSnapColor(c RGBA) RendererOption {
	return func(r *FrameRenderer) { r.snapColor = c }
}

// WithCrosshairColor sets the crosshair color.
func WithCrosshairColor(c RGBA) RendererOption {
	return func(r *FrameRenderer) { r.crosshairColor = c }
}

// WithGripSize sets the on-screen grip size in pixels.
func WithGripSize(pixels float64) RendererOption {
	return func(r *FrameRenderer) {
		if pixels > 0 {
			r.gripPixels = pixels
		}
	}
}

// WithGrid replaces the default grid (colors, or a custom scheme).
func WithGrid(g *Grid) RendererOption {
	return func(r *FrameRenderer) {
		if g != nil {
			r.grid = g
		}
	}
}
