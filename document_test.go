package draft

import (
	"encoding/json"
	"testing"
)

func TestLayerFallback(t *testing.T) {
	doc := NewDocument()
	if got := doc.Layer("missing"); got.Name != DefaultLayerName {
		t.Errorf("unknown layer resolved to %q, want %q", got.Name, DefaultLayerName)
	}
}

func TestAddEntityDefaults(t *testing.T) {
	doc := NewDocument()
	doc.AddLayer("walls", RGB(1, 1, 0))
	doc.SetCurrentLayer("walls")

	e := doc.AddEntity(NewLine(Pt(0, 0), Pt(1, 1)))
	a := e.Attrs()
	if a.ID == "" {
		t.Error("missing id should be generated")
	}
	if a.Layer != "walls" {
		t.Errorf("layer = %q, want current layer walls", a.Layer)
	}
	if a.LineWidth != 1 {
		t.Errorf("lineWidth = %v, want default 1", a.LineWidth)
	}
}

func TestRemoveEntityUnknownIDIsNoOp(t *testing.T) {
	doc := NewDocument()
	doc.AddEntity(NewLine(Pt(0, 0), Pt(1, 1)))
	doc.RemoveEntity("ghost")
	if len(doc.Entities()) != 1 {
		t.Error("removing an unknown id must not disturb the document")
	}
}

func TestDocumentObserver(t *testing.T) {
	doc := NewDocument()
	var events []EventKind
	unsubscribe := doc.Subscribe(func(ev Event) { events = append(events, ev.Kind) })

	e := doc.AddEntity(NewLine(Pt(0, 0), Pt(1, 1)))
	doc.Touch(e.Attrs().ID)
	doc.RemoveEntity(e.Attrs().ID)

	want := []EventKind{EventAdd, EventUpdate, EventRemove}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}

	unsubscribe()
	doc.AddEntity(NewLine(Pt(2, 2), Pt(3, 3)))
	if len(events) != len(want) {
		t.Error("unsubscribed observer still received events")
	}
}

func TestDocumentExtents(t *testing.T) {
	doc := NewDocument()
	if _, ok := doc.Extents(); ok {
		t.Error("empty document should report no extents")
	}
	doc.AddEntity(NewCircle(Pt(0, 0), 10))
	doc.AddEntity(NewLine(Pt(50, 50), Pt(100, 60)))

	bbox, ok := doc.Extents()
	if !ok {
		t.Fatal("extents should exist")
	}
	want := Rect{Min: Pt(-10, -10), Max: Pt(100, 60)}
	if bbox != want {
		t.Errorf("extents = %+v, want %+v", bbox, want)
	}
}

func TestDocumentEncodeDecodeRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.Settings().Units = "in"
	doc.Settings().SnapSpacing = 2.5
	doc.AddLayer("walls", RGB(1, 0, 0)).Locked = true
	doc.SetCurrentLayer("walls")
	doc.AddEntity(NewLine(Pt(0, 0), Pt(10, 0)))
	doc.AddEntity(NewText(Pt(1, 1), "note", 3))
	doc.SetBlock(&Block{
		Name:     "door",
		Base:     Pt(0, 0),
		Entities: []map[string]any{NewLine(Pt(0, 0), Pt(0, 5)).Encode()},
	})

	// Through JSON, as the persistence collaborators would do it.
	raw, err := json.Marshal(doc.Encode())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := NewDocument()
	if err := restored.Decode(data); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if restored.Settings().Units != "in" || restored.Settings().SnapSpacing != 2.5 {
		t.Errorf("settings not restored: %+v", restored.Settings())
	}
	if l := restored.Layer("walls"); !l.Locked || l.Color != RGB(1, 0, 0) {
		t.Errorf("layer not restored: %+v", l)
	}
	if restored.CurrentLayer() != "walls" {
		t.Errorf("current layer = %q, want walls", restored.CurrentLayer())
	}
	if len(restored.Entities()) != 2 {
		t.Fatalf("%d entities, want 2", len(restored.Entities()))
	}
	if restored.Entities()[0].Type() != "line" || restored.Entities()[1].Type() != "text" {
		t.Error("entity order or types not preserved")
	}
	if restored.Block("door") == nil || len(restored.Block("door").Entities) != 1 {
		t.Error("block not restored")
	}
}

func TestDocumentClear(t *testing.T) {
	doc := NewDocument()
	doc.AddLayer("walls", RGB(1, 0, 0))
	doc.AddEntity(NewLine(Pt(0, 0), Pt(1, 1)))
	doc.Clear()

	if len(doc.Entities()) != 0 {
		t.Error("clear should drop entities")
	}
	if len(doc.Layers()) != 1 {
		t.Error("clear should drop all layers except layer 0")
	}
	if doc.CurrentLayer() != DefaultLayerName {
		t.Error("clear should reset the current layer")
	}
}

func TestEntityIDsUnique(t *testing.T) {
	doc := NewDocument()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		e := doc.AddEntity(NewCircle(Pt(0, 0), 1))
		id := e.Attrs().ID
		if seen[id] {
			t.Fatalf("duplicate generated id %q", id)
		}
		seen[id] = true
	}
}
