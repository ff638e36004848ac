package draft

// Default maximum depth of each history stack.
const defaultUndoCapacity = 100

// ActionKind discriminates the recorded mutation variants.
type ActionKind int

const (
	// ActionAdd records an entity insertion.
	ActionAdd ActionKind = iota
	// ActionRemove records an entity deletion.
	ActionRemove
	// ActionUpdate records an in-place entity mutation.
	ActionUpdate
)

// Action is one reversible document mutation. Add and Remove carry a
// full encoded snapshot of the affected entity; Update carries both the
// pre- and post-mutation snapshots. Remove additionally remembers the
// entity's z-order index so undo restores the original stacking.
type Action struct {
	Kind   ActionKind
	ID     string
	Index  int
	Before map[string]any
	After  map[string]any
}

// UndoStack keeps two capacity-bounded stacks of actions and replays
// them against a document. Recording a new action always clears the redo
// stack: redo is only valid immediately after an undo. Replay mutates
// the document directly and records nothing, so undoing can never create
// recursive history entries.
type UndoStack struct {
	doc      *Document
	undo     []Action
	redo     []Action
	capacity int
}

// NewUndoStack creates an undo stack over a document with the default
// capacity of 100 actions per stack.
func NewUndoStack(doc *Document) *UndoStack {
	return &UndoStack{doc: doc, capacity: defaultUndoCapacity}
}

// SetCapacity bounds both stacks. Values below 1 keep the current bound.
func (u *UndoStack) SetCapacity(n int) {
	if n >= 1 {
		u.capacity = n
	}
}

// CanUndo reports whether an undo step is available.
func (u *UndoStack) CanUndo() bool { return len(u.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (u *UndoStack) CanRedo() bool { return len(u.redo) > 0 }

// Record pushes an action onto the undo stack, evicting the oldest entry
// beyond capacity, and clears the redo stack.
func (u *UndoStack) Record(a Action) {
	u.undo = append(u.undo, a)
	if len(u.undo) > u.capacity {
		u.undo = u.undo[len(u.undo)-u.capacity:]
	}
	u.redo = u.redo[:0]
}

// RecordAdd records the insertion of an entity.
func (u *UndoStack) RecordAdd(e Entity) {
	u.Record(Action{Kind: ActionAdd, ID: e.Attrs().ID, After: e.Encode()})
}

// RecordRemove records the deletion of an entity that sat at the given
// z-order index.
func (u *UndoStack) RecordRemove(e Entity, index int) {
	u.Record(Action{Kind: ActionRemove, ID: e.Attrs().ID, Index: index, Before: e.Encode()})
}

// RecordUpdate records an in-place mutation from one snapshot to another.
func (u *UndoStack) RecordUpdate(id string, before, after map[string]any) {
	u.Record(Action{Kind: ActionUpdate, ID: id, Before: before, After: after})
}

// Undo reverses the most recent action and moves it to the redo stack.
// It is a no-op on an empty stack and reports whether anything happened.
func (u *UndoStack) Undo() bool {
	if len(u.undo) == 0 {
		return false
	}
	a := u.undo[len(u.undo)-1]
	u.undo = u.undo[:len(u.undo)-1]

	switch a.Kind {
	case ActionAdd:
		u.doc.RemoveEntity(a.ID)
	case ActionRemove:
		if e, err := DecodeEntity(a.Before); err == nil {
			u.doc.insertEntityAt(a.Index, e)
		}
	case ActionUpdate:
		if e, err := DecodeEntity(a.Before); err == nil {
			u.doc.ReplaceEntity(a.ID, e)
		}
	}

	u.redo = append(u.redo, a)
	if len(u.redo) > u.capacity {
		u.redo = u.redo[len(u.redo)-u.capacity:]
	}
	return true
}

// Redo re-applies the most recently undone action and moves it back to
// the undo stack. It is a no-op on an empty stack.
func (u *UndoStack) Redo() bool {
	if len(u.redo) == 0 {
		return false
	}
	a := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]

	switch a.Kind {
	case ActionAdd:
		if e, err := DecodeEntity(a.After); err == nil {
			u.doc.AddEntity(e)
		}
	case ActionRemove:
		u.doc.RemoveEntity(a.ID)
	case ActionUpdate:
		if e, err := DecodeEntity(a.After); err == nil {
			u.doc.ReplaceEntity(a.ID, e)
		}
	}

	u.undo = append(u.undo, a)
	return true
}
