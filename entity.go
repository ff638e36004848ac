package draft

import (
	"errors"
	"fmt"
)

// ErrUnknownEntityType is returned when decoding data whose type tag has
// no registered constructor.
var ErrUnknownEntityType = errors.New("draft: unknown entity type")

// DefaultEntityColor is used when neither the entity nor its layer
// resolves to a color.
var DefaultEntityColor = RGB(0.85, 0.85, 0.85)

// Entity is the capability contract every primitive variant implements.
// All coordinates are world coordinates. The set of variants is closed:
// line, arc, circle, rectangle, polyline, ellipse, spline, text.
type Entity interface {
	// Type returns the type tag the entity registers under.
	Type() string

	// Attrs returns the shared attributes. The pointer aliases the
	// entity's own state so callers can mutate attributes in place.
	Attrs() *Attrs

	// Draw renders the entity onto the surface in absolute world
	// coordinates. col is the already-resolved effective color; the
	// camera supplies the scale used to keep stroke widths visually
	// constant across zoom levels.
	Draw(s Surface, cam *Camera, col RGBA)

	// GripPoints returns the ordered world-space control points shown
	// as selection grips. These are also the endpoint-kind snap
	// candidates.
	GripPoints() []Point

	// MidPoints returns the midpoint-kind snap candidates (segment or
	// edge midpoints). Variants without meaningful midpoints return nil.
	MidPoints() []Point

	// BoundingBox returns the axis-aligned world-space bounding box.
	BoundingBox() Rect

	// HitTest reports whether the world point lies within tol world
	// units of the entity's geometry.
	HitTest(p Point, tol float64) bool

	// Encode returns a lossless serializable form: type tag, shared
	// attributes (excluding the transient selected flag), and all
	// geometric parameters.
	Encode() map[string]any

	// Decode restores the entity from its Encode form.
	Decode(data map[string]any) error
}

// Attrs holds the attributes shared by every entity variant.
type Attrs struct {
	ID        string
	Layer     string
	Color     *RGBA // nil means "inherit the layer color"
	LineWidth float64
	Visible   bool

	// Selected is transient view state and is never serialized.
	Selected bool
}

// strokeWidth returns the device line width for drawing: the entity's
// world line width is treated as a screen-pixel width, divided by the
// camera scale because the surface transform multiplies it back.
func (a *Attrs) strokeWidth(cam *Camera) float64 {
	w := a.LineWidth
	if w <= 0 {
		w = 1
	}
	return w / cam.Scale()
}

// encodeInto writes the shared attributes and type tag into m.
func (a *Attrs) encodeInto(m map[string]any, typeTag string) {
	m["id"] = a.ID
	m["type"] = typeTag
	m["layer"] = a.Layer
	if a.Color != nil {
		m["color"] = a.Color.HexString()
	} else {
		m["color"] = nil
	}
	m["lineWidth"] = a.LineWidth
	m["visible"] = a.Visible
}

// decodeFrom restores the shared attributes from m. Missing fields keep
// sensible defaults so partially specified protocol payloads work.
func (a *Attrs) decodeFrom(m map[string]any) {
	if v, ok := m["id"].(string); ok {
		a.ID = v
	}
	if v, ok := m["layer"].(string); ok {
		a.Layer = v
	}
	if v, ok := m["color"].(string); ok && v != "" {
		c := Hex(v)
		a.Color = &c
	} else {
		a.Color = nil
	}
	if v, ok := num(m["lineWidth"]); ok {
		a.LineWidth = v
	} else if a.LineWidth == 0 {
		a.LineWidth = 1
	}
	if v, ok := m["visible"].(bool); ok {
		a.Visible = v
	} else {
		a.Visible = true
	}
}

// entityFactories maps type tags to constructors. Each variant file
// registers itself in an init function.
var entityFactories = map[string]func() Entity{}

// RegisterEntity registers a constructor for a type tag. It is called
// from init functions of the built-in variants and may be used to add
// application-specific variants.
func RegisterEntity(typeTag string, factory func() Entity) {
	entityFactories[typeTag] = factory
}

// NewEntity constructs an empty entity of the given type tag.
func NewEntity(typeTag string) (Entity, error) {
	factory, ok := entityFactories[typeTag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, typeTag)
	}
	return factory(), nil
}

// DecodeEntity constructs an entity from its Encode form, dispatching on
// the "type" field.
func DecodeEntity(data map[string]any) (Entity, error) {
	typeTag, _ := data["type"].(string)
	e, err := NewEntity(typeTag)
	if err != nil {
		return nil, err
	}
	if err := e.Decode(data); err != nil {
		return nil, err
	}
	return e, nil
}

// num converts a decoded scalar to float64. JSON decoding produces
// float64, but protocol payloads built in Go often carry int values.
func num(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// encodePoint serializes a point as {"x": ..., "y": ...}.
func encodePoint(p Point) map[string]any {
	return map[string]any{"x": p.X, "y": p.Y}
}

// decodePoint reads a point serialized by encodePoint.
func decodePoint(v any) (Point, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Point{}, false
	}
	x, okX := num(m["x"])
	y, okY := num(m["y"])
	if !okX || !okY {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// encodePoints serializes an ordered point sequence.
func encodePoints(points []Point) []any {
	out := make([]any, len(points))
	for i, p := range points {
		out[i] = encodePoint(p)
	}
	return out
}

// decodePoints reads a point sequence serialized by encodePoints.
func decodePoints(v any) ([]Point, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	points := make([]Point, 0, len(list))
	for _, item := range list {
		p, ok := decodePoint(item)
		if !ok {
			return nil, false
		}
		points = append(points, p)
	}
	return points, true
}
