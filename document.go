package draft

import (
	"github.com/google/uuid"
)

// Settings holds document-wide defaults.
type Settings struct {
	// Units names the unit system ("mm", "in", ...). Purely descriptive.
	Units string
	// GridSpacing is the default reference grid spacing in world units.
	GridSpacing float64
	// SnapSpacing is the grid-snap rounding step in world units.
	SnapSpacing float64
}

// DefaultSettings returns the settings a fresh document starts with.
func DefaultSettings() Settings {
	return Settings{Units: "mm", GridSpacing: 10, SnapSpacing: 5}
}

// Block is a named, reusable group of encoded entities with a base
// point. Blocks are stored and round-tripped with the document; the
// engine itself defines no insert or explode operations on them.
type Block struct {
	Name     string
	Base     Point
	Entities []map[string]any
}

// EventKind discriminates document change notifications.
type EventKind int

const (
	// EventAdd fires after an entity is inserted.
	EventAdd EventKind = iota
	// EventUpdate fires after an entity is mutated or replaced.
	EventUpdate
	// EventRemove fires after an entity is deleted.
	EventRemove
	// EventLayers fires after the layer table or current layer changes.
	EventLayers
	// EventClear fires after the document is reset.
	EventClear
)

// Event describes a document mutation. EntityID is set for the
// entity-scoped kinds.
type Event struct {
	Kind     EventKind
	EntityID string
}

// Document owns the entities, layers, blocks, and settings of one
// drawing. Entity insertion order is z-order, back to front. Entity ids
// are unique within a document; each entity belongs to exactly one
// document.
//
// Document is not safe for concurrent use: all mutation happens on the
// thread driving the frame loop.
type Document struct {
	order    []Entity
	byID     map[string]Entity
	layers   map[string]*Layer
	blocks   map[string]*Block
	settings Settings
	current  string

	observers []func(Event)
}

// NewDocument creates an empty document with default settings and the
// always-present layer "0" as the current layer.
func NewDocument() *Document {
	d := &Document{
		byID:     map[string]Entity{},
		layers:   map[string]*Layer{},
		blocks:   map[string]*Block{},
		settings: DefaultSettings(),
		current:  DefaultLayerName,
	}
	d.layers[DefaultLayerName] = NewLayer(DefaultLayerName, RGB(1, 1, 1))
	return d
}

// Subscribe registers a change observer and returns a function that
// removes it. Observers are invoked synchronously after each mutation.
func (d *Document) Subscribe(fn func(Event)) (unsubscribe func()) {
	d.observers = append(d.observers, fn)
	i := len(d.observers) - 1
	return func() { d.observers[i] = nil }
}

func (d *Document) notify(ev Event) {
	for _, fn := range d.observers {
		if fn != nil {
			fn(ev)
		}
	}
}

// Settings returns a pointer to the document settings for in-place edits.
func (d *Document) Settings() *Settings {
	return &d.settings
}

// AddEntity appends an entity at the top of the z-order. A missing id is
// filled with a fresh UUID; a missing layer reference gets the current
// layer. Returns the inserted entity for convenience.
func (d *Document) AddEntity(e Entity) Entity {
	a := e.Attrs()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Layer == "" {
		a.Layer = d.current
	}
	if a.LineWidth == 0 {
		a.LineWidth = 1
	}
	d.order = append(d.order, e)
	d.byID[a.ID] = e
	d.notify(Event{Kind: EventAdd, EntityID: a.ID})
	return e
}

// insertEntityAt re-inserts an entity at a z-order index, used by undo
// replay to restore original stacking. Indexes beyond the current length
// append.
func (d *Document) insertEntityAt(index int, e Entity) {
	if index < 0 {
		index = 0
	}
	if index >= len(d.order) {
		d.order = append(d.order, e)
	} else {
		d.order = append(d.order[:index], append([]Entity{e}, d.order[index:]...)...)
	}
	d.byID[e.Attrs().ID] = e
	d.notify(Event{Kind: EventAdd, EntityID: e.Attrs().ID})
}

// Entity returns the entity with the given id, or nil.
func (d *Document) Entity(id string) Entity {
	return d.byID[id]
}

// EntityIndex returns the z-order index of an entity id, or -1.
func (d *Document) EntityIndex(id string) int {
	for i, e := range d.order {
		if e.Attrs().ID == id {
			return i
		}
	}
	return -1
}

// Entities returns the entities in z-order, back to front. The returned
// slice is shared; callers must not modify it.
func (d *Document) Entities() []Entity {
	return d.order
}

// RemoveEntity deletes an entity by id. Removing an unknown id is a
// silent no-op: the caller may be racing a prior deletion.
func (d *Document) RemoveEntity(id string) {
	e, ok := d.byID[id]
	if !ok {
		return
	}
	delete(d.byID, id)
	for i, cur := range d.order {
		if cur == e {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	d.notify(Event{Kind: EventRemove, EntityID: id})
}

// ReplaceEntity swaps the entity with the given id for a decoded
// snapshot, keeping its z-order position. Unknown ids are a silent
// no-op. Used by undo/redo replay of Update actions.
func (d *Document) ReplaceEntity(id string, e Entity) {
	for i, cur := range d.order {
		if cur.Attrs().ID == id {
			d.order[i] = e
			d.byID[id] = e
			d.notify(Event{Kind: EventUpdate, EntityID: id})
			return
		}
	}
}

// Touch notifies observers that an entity was mutated in place.
func (d *Document) Touch(id string) {
	if _, ok := d.byID[id]; ok {
		d.notify(Event{Kind: EventUpdate, EntityID: id})
	}
}

// Layer resolves a layer name, falling back to layer "0" for unknown
// names so lookups degrade gracefully.
func (d *Document) Layer(name string) *Layer {
	if l, ok := d.layers[name]; ok {
		return l
	}
	return d.layers[DefaultLayerName]
}

// AddLayer creates a layer if it does not already exist and returns it.
func (d *Document) AddLayer(name string, color RGBA) *Layer {
	if l, ok := d.layers[name]; ok {
		return l
	}
	l := NewLayer(name, color)
	d.layers[name] = l
	d.notify(Event{Kind: EventLayers})
	return l
}

// Layers returns the layer table keyed by name. The map is shared;
// callers must not add or delete entries directly.
func (d *Document) Layers() map[string]*Layer {
	return d.layers
}

// CurrentLayer returns the name of the layer new entities default to.
func (d *Document) CurrentLayer() string {
	return d.current
}

// SetCurrentLayer changes the default layer for new entities. Unknown
// names are a silent no-op.
func (d *Document) SetCurrentLayer(name string) {
	if _, ok := d.layers[name]; !ok {
		return
	}
	d.current = name
	d.notify(Event{Kind: EventLayers})
}

// Block returns the named block, or nil.
func (d *Document) Block(name string) *Block {
	return d.blocks[name]
}

// SetBlock stores a block definition under its name.
func (d *Document) SetBlock(b *Block) {
	d.blocks[b.Name] = b
}

// Extents returns the union of all entity bounding boxes, the target of
// zoom-to-fit. ok is false for an empty document.
func (d *Document) Extents() (bbox Rect, ok bool) {
	for i, e := range d.order {
		if i == 0 {
			bbox = e.BoundingBox()
		} else {
			bbox = bbox.Union(e.BoundingBox())
		}
	}
	return bbox, len(d.order) > 0
}

// Clear resets the document to its initial empty state. This is the only
// way layers are destroyed.
func (d *Document) Clear() {
	d.order = nil
	d.byID = map[string]Entity{}
	d.layers = map[string]*Layer{DefaultLayerName: NewLayer(DefaultLayerName, RGB(1, 1, 1))}
	d.blocks = map[string]*Block{}
	d.settings = DefaultSettings()
	d.current = DefaultLayerName
	d.notify(Event{Kind: EventClear})
}

// Encode returns the full serialized document:
//
//	{ settings, layers: {name -> layer}, entities: [entity...], blocks }
func (d *Document) Encode() map[string]any {
	layers := map[string]any{}
	for name, l := range d.layers {
		layers[name] = l.Encode()
	}
	entities := make([]any, len(d.order))
	for i, e := range d.order {
		entities[i] = e.Encode()
	}
	blocks := map[string]any{}
	for name, b := range d.blocks {
		ents := make([]any, len(b.Entities))
		for i, data := range b.Entities {
			ents[i] = data
		}
		blocks[name] = map[string]any{
			"name":     b.Name,
			"base":     encodePoint(b.Base),
			"entities": ents,
		}
	}
	return map[string]any{
		"settings": map[string]any{
			"units":       d.settings.Units,
			"gridSpacing": d.settings.GridSpacing,
			"snapSpacing": d.settings.SnapSpacing,
		},
		"layers":       layers,
		"entities":     entities,
		"blocks":       blocks,
		"currentLayer": d.current,
	}
}

// Decode replaces the document contents with a serialized form produced
// by Encode. Entities with unknown type tags are the only error source.
func (d *Document) Decode(data map[string]any) error {
	d.Clear()
	if s, ok := data["settings"].(map[string]any); ok {
		if v, ok := s["units"].(string); ok {
			d.settings.Units = v
		}
		if v, ok := num(s["gridSpacing"]); ok {
			d.settings.GridSpacing = v
		}
		if v, ok := num(s["snapSpacing"]); ok {
			d.settings.SnapSpacing = v
		}
	}
	if layers, ok := data["layers"].(map[string]any); ok {
		for _, raw := range layers {
			if m, ok := raw.(map[string]any); ok {
				l := decodeLayer(m)
				if l.Name != "" {
					d.layers[l.Name] = l
				}
			}
		}
	}
	if entities, ok := data["entities"].([]any); ok {
		for _, raw := range entities {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			e, err := DecodeEntity(m)
			if err != nil {
				return err
			}
			d.AddEntity(e)
		}
	}
	if blocks, ok := data["blocks"].(map[string]any); ok {
		for name, raw := range blocks {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			b := &Block{Name: name}
			if p, ok := decodePoint(m["base"]); ok {
				b.Base = p
			}
			if ents, ok := m["entities"].([]any); ok {
				for _, re := range ents {
					if em, ok := re.(map[string]any); ok {
						b.Entities = append(b.Entities, em)
					}
				}
			}
			d.blocks[name] = b
		}
	}
	if cur, ok := data["currentLayer"].(string); ok {
		d.SetCurrentLayer(cur)
	}
	return nil
}
