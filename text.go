package draft

import "unicode/utf8"

func init() {
	RegisterEntity("text", func() Entity { return &Text{} })
}

// Glyph advance as a fraction of font height, used to approximate text
// width without real font metrics.
const glyphWidthFactor = 0.6

// Text is a single-line annotation anchored at its top-left corner.
// Width is approximated from the rune count; exact metrics are left to
// the drawing surface.
type Text struct {
	attrs Attrs

	Anchor Point
	Text   string
	Height float64
	Font   string
}

// NewText creates a text annotation.
func NewText(anchor Point, text string, height float64) *Text {
	return &Text{attrs: Attrs{Visible: true}, Anchor: anchor, Text: text, Height: height, Font: "sans-serif"}
}

func (t *Text) Type() string { return "text" }
func (t *Text) Attrs() *Attrs { return &t.attrs }

func (t *Text) Draw(s Surface, cam *Camera, col RGBA) {
	s.SetColor(col)
	s.DrawText(t.Text, t.Anchor.X, t.Anchor.Y, t.Height)
}

func (t *Text) GripPoints() []Point {
	return []Point{t.Anchor}
}

func (t *Text) MidPoints() []Point { return nil }

// approxWidth estimates the rendered width from the rune count.
func (t *Text) approxWidth() float64 {
	return float64(utf8.RuneCountInString(t.Text)) * t.Height * glyphWidthFactor
}

func (t *Text) BoundingBox() Rect {
	return Rect{
		Min: t.Anchor,
		Max: Point{X: t.Anchor.X + t.approxWidth(), Y: t.Anchor.Y + t.Height},
	}
}

// HitTest is an inclusive bounding-box test.
func (t *Text) HitTest(p Point, tol float64) bool {
	return t.BoundingBox().Expand(tol).Contains(p)
}

func (t *Text) Encode() map[string]any {
	m := map[string]any{
		"anchor": encodePoint(t.Anchor),
		"text":   t.Text,
		"height": t.Height,
		"font":   t.Font,
	}
	t.attrs.encodeInto(m, t.Type())
	return m
}

func (t *Text) Decode(data map[string]any) error {
	t.attrs.decodeFrom(data)
	if p, ok := decodePoint(data["anchor"]); ok {
		t.Anchor = p
	}
	if v, ok := data["text"].(string); ok {
		t.Text = v
	}
	if v, ok := num(data["height"]); ok {
		t.Height = v
	}
	if v, ok := data["font"].(string); ok {
		t.Font = v
	}
	return nil
}
