package draft

// Selection tracks the set of selected entity ids and keeps the
// entities' transient Selected flags in sync so the renderer can resolve
// the selection color without consulting the manager.
type Selection struct {
	doc *Document
	ids map[string]struct{}
}

// NewSelection creates an empty selection over a document.
func NewSelection(doc *Document) *Selection {
	return &Selection{doc: doc, ids: map[string]struct{}{}}
}

// Contains reports whether an entity id is selected.
func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected entities.
func (s *Selection) Count() int { return len(s.ids) }

// Add selects an entity. Unknown ids are ignored.
func (s *Selection) Add(id string) {
	e := s.doc.Entity(id)
	if e == nil {
		return
	}
	s.ids[id] = struct{}{}
	e.Attrs().Selected = true
}

// AddEntities selects every entity in the list, the typical follow-up to
// a rectangle select.
func (s *Selection) AddEntities(entities []Entity) {
	for _, e := range entities {
		s.Add(e.Attrs().ID)
	}
}

// Remove deselects an entity id.
func (s *Selection) Remove(id string) {
	if _, ok := s.ids[id]; !ok {
		return
	}
	delete(s.ids, id)
	if e := s.doc.Entity(id); e != nil {
		e.Attrs().Selected = false
	}
}

// Toggle flips the selection state of an entity id.
func (s *Selection) Toggle(id string) {
	if s.Contains(id) {
		s.Remove(id)
	} else {
		s.Add(id)
	}
}

// Clear deselects everything.
func (s *Selection) Clear() {
	for id := range s.ids {
		if e := s.doc.Entity(id); e != nil {
			e.Attrs().Selected = false
		}
	}
	s.ids = map[string]struct{}{}
}

// Entities returns the selected entities in document z-order.
func (s *Selection) Entities() []Entity {
	var out []Entity
	for _, e := range s.doc.Entities() {
		if s.Contains(e.Attrs().ID) {
			out = append(out, e)
		}
	}
	return out
}

// DeleteSelected removes every selected entity from the document,
// recording a Remove action per entity when an undo stack is supplied.
// Entities on locked layers are skipped. Returns the number deleted.
func (s *Selection) DeleteSelected(undo *UndoStack) int {
	deleted := 0
	for _, e := range s.Entities() {
		a := e.Attrs()
		if s.doc.Layer(a.Layer).Locked {
			continue
		}
		index := s.doc.EntityIndex(a.ID)
		if undo != nil {
			undo.RecordRemove(e, index)
		}
		s.doc.RemoveEntity(a.ID)
		delete(s.ids, a.ID)
		deleted++
	}
	return deleted
}
