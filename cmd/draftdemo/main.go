// Command draftdemo builds a small drawing and renders it to a PNG,
// exercising the document model, camera, and software raster surface.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gocad/draft"
	"github.com/gocad/draft/raster"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	doc := draft.NewDocument()
	doc.AddLayer("walls", draft.RGB(0.9, 0.9, 0.6))
	doc.AddLayer("dims", draft.RGB(0.4, 0.8, 1))

	doc.SetCurrentLayer("walls")
	doc.AddEntity(draft.NewRectangle(draft.Pt(0, 0), draft.Pt(200, 120)))
	doc.AddEntity(draft.NewLine(draft.Pt(0, 60), draft.Pt(200, 60)))
	doc.AddEntity(draft.NewCircle(draft.Pt(100, 60), 25))
	doc.AddEntity(draft.NewArc(draft.Pt(200, 0), 40, math.Pi/2, math.Pi))

	doc.SetCurrentLayer("dims")
	doc.AddEntity(draft.NewPolyline([]draft.Point{
		{X: -20, Y: 0}, {X: -30, Y: 0}, {X: -30, Y: 120}, {X: -20, Y: 120},
	}, false))
	doc.AddEntity(draft.NewText(draft.Pt(60, -25), "floor plan", 12))
	doc.AddEntity(draft.NewSpline([]draft.Point{
		{X: 0, Y: 140}, {X: 50, Y: 170}, {X: 100, Y: 140}, {X: 150, Y: 170}, {X: 200, Y: 140},
	}, false))

	cam := draft.NewCamera()
	if bbox, ok := doc.Extents(); ok {
		cam.FitExtents(bbox, float64(*width), float64(*height))
	}

	s := raster.New(*width, *height)
	r := draft.NewFrameRenderer()
	r.RenderScaled(s, doc, cam, 1)

	if err := s.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}
