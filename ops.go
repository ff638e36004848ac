package draft

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned for operation names outside the protocol.
// An unknown action is a programmer error in the calling integration and
// is surfaced immediately rather than swallowed.
var ErrUnknownAction = errors.New("draft: unknown action")

// ErrBadOperand is returned when an operation payload is missing a
// required field or carries one of the wrong shape.
var ErrBadOperand = errors.New("draft: bad operand")

// Executor applies the external operation protocol to a document. It is
// the seam through which UI shells, importers, and automation drivers
// push geometry into the engine; the engine itself exposes no network or
// file I/O. Mutations made through the executor are recorded on the undo
// stack.
type Executor struct {
	doc  *Document
	undo *UndoStack
}

// NewExecutor creates an executor over a document and its undo stack.
func NewExecutor(doc *Document, undo *UndoStack) *Executor {
	return &Executor{doc: doc, undo: undo}
}

// Execute runs one named operation:
//
//	add_entity    {entity}     construct via the type registry and insert
//	update_entity {id, props}  shallow-merge props into the entity
//	remove_entity {id}         delete the entity
//	add_layer     {name, color} create a layer
//	set_layer     {name}       change the current-layer default
//
// Unknown action names return ErrUnknownAction. update_entity and
// remove_entity on an unknown id are silent no-ops: the caller may be
// racing a prior deletion.
func (x *Executor) Execute(action string, params map[string]any) error {
	Logger().Debug("draft: execute", "action", action)
	switch action {
	case "add_entity":
		return x.addEntity(params)
	case "update_entity":
		return x.updateEntity(params)
	case "remove_entity":
		return x.removeEntity(params)
	case "add_layer":
		return x.addLayer(params)
	case "set_layer":
		return x.setLayer(params)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

func (x *Executor) addEntity(params map[string]any) error {
	data, ok := params["entity"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: add_entity needs an entity object", ErrBadOperand)
	}
	e, err := DecodeEntity(data)
	if err != nil {
		return err
	}
	x.doc.AddEntity(e)
	x.undo.RecordAdd(e)
	return nil
}

func (x *Executor) updateEntity(params map[string]any) error {
	id, ok := params["id"].(string)
	if !ok {
		return fmt.Errorf("%w: update_entity needs an id", ErrBadOperand)
	}
	props, ok := params["props"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: update_entity needs a props object", ErrBadOperand)
	}
	e := x.doc.Entity(id)
	if e == nil {
		return nil
	}

	before := e.Encode()
	merged := e.Encode()
	for k, v := range props {
		// Identity fields are not mutable through the protocol.
		if k == "id" || k == "type" {
			continue
		}
		merged[k] = v
	}
	if err := e.Decode(merged); err != nil {
		return err
	}
	x.doc.Touch(id)
	x.undo.RecordUpdate(id, before, e.Encode())
	return nil
}

func (x *Executor) removeEntity(params map[string]any) error {
	id, ok := params["id"].(string)
	if !ok {
		return fmt.Errorf("%w: remove_entity needs an id", ErrBadOperand)
	}
	e := x.doc.Entity(id)
	if e == nil {
		return nil
	}
	index := x.doc.EntityIndex(id)
	x.undo.RecordRemove(e, index)
	x.doc.RemoveEntity(id)
	return nil
}

func (x *Executor) addLayer(params map[string]any) error {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		return fmt.Errorf("%w: add_layer needs a name", ErrBadOperand)
	}
	color := RGB(1, 1, 1)
	if hex, ok := params["color"].(string); ok {
		color = Hex(hex)
	}
	x.doc.AddLayer(name, color)
	return nil
}

func (x *Executor) setLayer(params map[string]any) error {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		return fmt.Errorf("%w: set_layer needs a name", ErrBadOperand)
	}
	x.doc.SetCurrentLayer(name)
	return nil
}
