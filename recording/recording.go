// Package recording provides a draft.Surface that records drawing
// commands as typed values instead of producing pixels. Renderer tests
// assert on the recorded command stream, and export backends (SVG, PDF)
// translate it into their output format.
package recording

import "github.com/gocad/draft"

// Command is one recorded drawing call. The concrete types below mirror
// the draft.Surface methods one to one.
type Command interface {
	isCommand()
}

// Clear records Surface.Clear.
type Clear struct {
	Color draft.RGBA
}

// SetTransform records Surface.SetTransform.
type SetTransform struct {
	Matrix draft.Matrix
}

// MoveTo records Surface.MoveTo.
type MoveTo struct {
	X, Y float64
}

// LineTo records Surface.LineTo.
type LineTo struct {
	X, Y float64
}

// QuadTo records Surface.QuadTo.
type QuadTo struct {
	CX, CY, X, Y float64
}

// Arc records Surface.Arc.
type Arc struct {
	CX, CY, R, Start, End float64
}

// ClosePath records Surface.ClosePath.
type ClosePath struct{}

// SetColor records Surface.SetColor.
type SetColor struct {
	Color draft.RGBA
}

// SetLineWidth records Surface.SetLineWidth.
type SetLineWidth struct {
	Width float64
}

// SetDash records Surface.SetDash.
type SetDash struct {
	Lengths []float64
}

// ClearDash records Surface.ClearDash.
type ClearDash struct{}

// Stroke records Surface.Stroke.
type Stroke struct{}

// Fill records Surface.Fill.
type Fill struct{}

// DrawText records Surface.DrawText.
type DrawText struct {
	Text         string
	X, Y, Height float64
}

func (Clear) isCommand()        {}
func (SetTransform) isCommand() {}
func (MoveTo) isCommand()       {}
func (LineTo) isCommand()       {}
func (QuadTo) isCommand()       {}
func (Arc) isCommand()          {}
func (ClosePath) isCommand()    {}
func (SetColor) isCommand()     {}
func (SetLineWidth) isCommand() {}
func (SetDash) isCommand()      {}
func (ClearDash) isCommand()    {}
func (Stroke) isCommand()       {}
func (Fill) isCommand()         {}
func (DrawText) isCommand()     {}

// Surface records every drawing call in order. The zero value is not
// usable; create one with New so Size has meaningful dimensions.
type Surface struct {
	W, H     float64
	Commands []Command
}

// New creates a recording surface with the given logical size.
func New(w, h float64) *Surface {
	return &Surface{W: w, H: h}
}

// Reset drops all recorded commands.
func (s *Surface) Reset() {
	s.Commands = s.Commands[:0]
}

// Count returns how many commands matching the filter were recorded.
// A nil filter counts everything.
func (s *Surface) Count(filter func(Command) bool) int {
	n := 0
	for _, c := range s.Commands {
		if filter == nil || filter(c) {
			n++
		}
	}
	return n
}

func (s *Surface) record(c Command) {
	s.Commands = append(s.Commands, c)
}

func (s *Surface) Size() (float64, float64) { return s.W, s.H }

func (s *Surface) Clear(c draft.RGBA) { s.record(Clear{Color: c}) }

func (s *Surface) SetTransform(m draft.Matrix) { s.record(SetTransform{Matrix: m}) }

func (s *Surface) MoveTo(x, y float64) { s.record(MoveTo{X: x, Y: y}) }

func (s *Surface) LineTo(x, y float64) { s.record(LineTo{X: x, Y: y}) }

func (s *Surface) QuadTo(cx, cy, x, y float64) { s.record(QuadTo{CX: cx, CY: cy, X: x, Y: y}) }

func (s *Surface) Arc(cx, cy, r, start, end float64) {
	s.record(Arc{CX: cx, CY: cy, R: r, Start: start, End: end})
}

func (s *Surface) ClosePath() { s.record(ClosePath{}) }

func (s *Surface) SetColor(c draft.RGBA) { s.record(SetColor{Color: c}) }

func (s *Surface) SetLineWidth(w float64) { s.record(SetLineWidth{Width: w}) }

func (s *Surface) SetDash(lengths ...float64) {
	s.record(SetDash{Lengths: append([]float64(nil), lengths...)})
}

func (s *Surface) ClearDash() { s.record(ClearDash{}) }

func (s *Surface) Stroke() { s.record(Stroke{}) }

func (s *Surface) Fill() { s.record(Fill{}) }

func (s *Surface) DrawText(text string, x, y, height float64) {
	s.record(DrawText{Text: text, X: x, Y: y, Height: height})
}

var _ draft.Surface = (*Surface)(nil)
