package draft

import "testing"

func TestSelectionFlagSync(t *testing.T) {
	doc := NewDocument()
	sel := NewSelection(doc)
	e := doc.AddEntity(NewLine(Pt(0, 0), Pt(1, 1)))
	id := e.Attrs().ID

	sel.Add(id)
	if !e.Attrs().Selected {
		t.Error("Add must set the entity's Selected flag")
	}
	if !sel.Contains(id) || sel.Count() != 1 {
		t.Error("selection set out of sync after Add")
	}

	sel.Toggle(id)
	if e.Attrs().Selected {
		t.Error("Toggle must clear the Selected flag")
	}

	sel.Add(id)
	sel.Clear()
	if e.Attrs().Selected || sel.Count() != 0 {
		t.Error("Clear must deselect everything")
	}
}

func TestSelectionAddUnknownID(t *testing.T) {
	sel := NewSelection(NewDocument())
	sel.Add("ghost")
	if sel.Count() != 0 {
		t.Error("unknown ids must not enter the selection")
	}
}

func TestDeleteSelected(t *testing.T) {
	doc := NewDocument()
	undo := NewUndoStack(doc)
	sel := NewSelection(doc)

	a := doc.AddEntity(NewLine(Pt(0, 0), Pt(1, 0)))
	b := doc.AddEntity(NewCircle(Pt(5, 5), 2))
	keep := doc.AddEntity(NewLine(Pt(9, 9), Pt(10, 10)))

	sel.AddEntities([]Entity{a, b})
	if n := sel.DeleteSelected(undo); n != 2 {
		t.Fatalf("deleted %d, want 2", n)
	}
	if len(doc.Entities()) != 1 || doc.Entities()[0] != keep {
		t.Fatal("unselected entity should survive")
	}

	// Both removals were recorded and reverse cleanly.
	undo.Undo()
	undo.Undo()
	if len(doc.Entities()) != 3 {
		t.Fatalf("after undo, %d entities, want 3", len(doc.Entities()))
	}
	if doc.Entity(a.Attrs().ID) == nil || doc.Entity(b.Attrs().ID) == nil {
		t.Error("undo did not restore the deleted entities")
	}
}

func TestDeleteSelectedSkipsLockedLayer(t *testing.T) {
	doc := NewDocument()
	sel := NewSelection(doc)
	doc.AddLayer("locked", RGB(1, 1, 1))

	e := doc.AddEntity(NewLine(Pt(0, 0), Pt(1, 0)))
	sel.Add(e.Attrs().ID)
	doc.Layer("locked").Locked = true
	e.Attrs().Layer = "locked"

	if n := sel.DeleteSelected(nil); n != 0 {
		t.Errorf("deleted %d entities on a locked layer, want 0", n)
	}
	if len(doc.Entities()) != 1 {
		t.Error("locked-layer entity must survive bulk delete")
	}
}
