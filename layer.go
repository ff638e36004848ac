package draft

// DefaultLayerName is the layer that always exists and absorbs entities
// whose own layer reference cannot be resolved.
const DefaultLayerName = "0"

// Layer groups entities for display and edit control. The name is the
// unique key and is immutable after creation. Locked layers are excluded
// from hit-testing and editing but are still rendered.
type Layer struct {
	Name    string
	Color   RGBA
	Visible bool
	Locked  bool
}

// NewLayer creates a visible, unlocked layer.
func NewLayer(name string, color RGBA) *Layer {
	return &Layer{Name: name, Color: color, Visible: true}
}

// Encode returns the serialized layer form.
func (l *Layer) Encode() map[string]any {
	return map[string]any{
		"name":    l.Name,
		"color":   l.Color.HexString(),
		"visible": l.Visible,
		"locked":  l.Locked,
	}
}

// decodeLayer restores a layer from its Encode form.
func decodeLayer(data map[string]any) *Layer {
	l := &Layer{Visible: true}
	if v, ok := data["name"].(string); ok {
		l.Name = v
	}
	if v, ok := data["color"].(string); ok {
		l.Color = Hex(v)
	}
	if v, ok := data["visible"].(bool); ok {
		l.Visible = v
	}
	if v, ok := data["locked"].(bool); ok {
		l.Locked = v
	}
	return l
}
