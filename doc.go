// Package draft is the 2D drawing engine of a CAD application: an
// infinite world-coordinate canvas with a pan/zoom camera, a closed set
// of vector entity primitives, priority-ordered cursor snapping,
// pixel-precise hit testing, and a snapshot-based undo log.
//
// # Overview
//
//	doc := draft.NewDocument()
//	cam := draft.NewCamera()
//	undo := draft.NewUndoStack(doc)
//
//	doc.AddEntity(draft.NewLine(draft.Pt(0, 0), draft.Pt(100, 0)))
//
//	s := raster.New(800, 600)
//	r := draft.NewFrameRenderer()
//	r.RenderFrame(s, doc, cam, nil, draft.Pt(0, 0))
//
// # Coordinate systems
//
// World coordinates are the document's drawing plane, independent of
// zoom and pan. Screen coordinates are surface pixels. The Camera maps
// between them with screen = world*scale + translation; tolerances that
// should feel constant on screen (pick radius, snap radius, stroke
// widths) are divided by the camera scale before use in world space.
//
// # Architecture
//
// The engine renders through the minimal Surface interface and performs
// no window, network, or file I/O of its own. The raster subpackage is a
// software Surface producing images; the recording subpackage captures
// draw commands for tests and export backends. External integrations
// drive the document through the Executor operation protocol.
//
// All types are single-threaded by design: the document is mutated only
// from the thread driving the frame loop.
package draft
