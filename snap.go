package draft

import "math"

// Screen-space distance within which an entity point captures the cursor.
const defaultSnapPixels = 10

// SnapKind says which rule produced a snapped point. The frame renderer
// draws a distinct indicator per kind.
type SnapKind int

const (
	// SnapNone means the raw cursor position was returned unchanged.
	SnapNone SnapKind = iota
	// SnapEndpoint captured an entity grip point.
	SnapEndpoint
	// SnapMidpoint captured a segment or edge midpoint.
	SnapMidpoint
	// SnapGrid snapped down to the nearest lower grid multiple.
	SnapGrid
)

// SnapResult is the remembered outcome of the latest resolution.
type SnapResult struct {
	Point Point
	Kind  SnapKind
}

// Snapper resolves raw world cursor positions to snapped points with a
// fixed priority: entity points first (endpoints and midpoints compete
// on screen-space distance, nearest wins, document order breaks ties),
// then the grid, then the raw point. Every rule has its own toggle;
// PixelThreshold is the capture radius in screen pixels.
type Snapper struct {
	Enabled  bool
	Endpoint bool
	Midpoint bool
	Grid     bool

	PixelThreshold float64

	last SnapResult
}

// NewSnapper creates a snapper with every rule enabled and the default
// 10px capture threshold.
func NewSnapper() *Snapper {
	return &Snapper{
		Enabled:        true,
		Endpoint:       true,
		Midpoint:       true,
		Grid:           true,
		PixelThreshold: defaultSnapPixels,
	}
}

// Last returns the most recent resolution, for indicator rendering.
func (sn *Snapper) Last() SnapResult {
	return sn.last
}

// Snap resolves a raw world point against the document under the given
// camera. The camera matters because capture distances are measured in
// screen pixels, keeping snap behavior constant across zoom levels.
func (sn *Snapper) Snap(doc *Document, cam *Camera, raw Point) Point {
	if !sn.Enabled {
		sn.last = SnapResult{Point: raw, Kind: SnapNone}
		return raw
	}

	if sn.Endpoint || sn.Midpoint {
		if p, kind, ok := sn.entitySnap(doc, cam, raw); ok {
			sn.last = SnapResult{Point: p, Kind: kind}
			return p
		}
	}

	if sn.Grid {
		spacing := doc.Settings().SnapSpacing
		if spacing > 0 {
			// Grid snap floors to the lower multiple: a point inside a
			// grid cell maps to the cell's min corner.
			p := Point{
				X: math.Floor(raw.X/spacing) * spacing,
				Y: math.Floor(raw.Y/spacing) * spacing,
			}
			sn.last = SnapResult{Point: p, Kind: SnapGrid}
			return p
		}
	}

	sn.last = SnapResult{Point: raw, Kind: SnapNone}
	return raw
}

// entitySnap finds the entity point with the smallest screen-space
// distance to the cursor under the pixel threshold. Strict comparison
// keeps the first-found candidate on ties, honoring document order.
func (sn *Snapper) entitySnap(doc *Document, cam *Camera, raw Point) (Point, SnapKind, bool) {
	cursor := cam.WorldToScreen(raw)
	threshold := sn.PixelThreshold
	if threshold <= 0 {
		threshold = defaultSnapPixels
	}

	best := Point{}
	bestKind := SnapNone
	bestDist := math.Inf(1)

	consider := func(p Point, kind SnapKind) {
		d := cam.WorldToScreen(p).Distance(cursor)
		if d <= threshold && d < bestDist {
			best, bestKind, bestDist = p, kind, d
		}
	}

	for _, e := range doc.Entities() {
		a := e.Attrs()
		if !a.Visible || !doc.Layer(a.Layer).Visible {
			continue
		}
		if sn.Endpoint {
			for _, p := range e.GripPoints() {
				consider(p, SnapEndpoint)
			}
		}
		if sn.Midpoint {
			for _, p := range e.MidPoints() {
				consider(p, SnapMidpoint)
			}
		}
	}
	return best, bestKind, bestKind != SnapNone
}
