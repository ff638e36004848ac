package raster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gocad/draft"
)

func pixelAt(s *Surface, x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

func TestClearFillsBackground(t *testing.T) {
	s := New(20, 20)
	s.Clear(draft.RGB(1, 0, 0))
	if got := pixelAt(s, 10, 10); got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("pixel = %+v, want red", got)
	}
}

func TestFillRectangle(t *testing.T) {
	s := New(40, 40)
	s.Clear(draft.RGB(0, 0, 0))
	s.SetColor(draft.RGB(0, 1, 0))
	s.MoveTo(10, 10)
	s.LineTo(30, 10)
	s.LineTo(30, 30)
	s.LineTo(10, 30)
	s.ClosePath()
	s.Fill()

	if got := pixelAt(s, 20, 20); got.G < 200 {
		t.Errorf("interior pixel = %+v, want green", got)
	}
	if got := pixelAt(s, 5, 5); got.G != 0 {
		t.Errorf("exterior pixel = %+v, want black", got)
	}
}

func TestStrokeLine(t *testing.T) {
	s := New(40, 40)
	s.Clear(draft.RGB(0, 0, 0))
	s.SetColor(draft.RGB(1, 1, 1))
	s.SetLineWidth(3)
	s.MoveTo(5, 20)
	s.LineTo(35, 20)
	s.Stroke()

	if got := pixelAt(s, 20, 20); got.R < 200 {
		t.Errorf("on-line pixel = %+v, want white", got)
	}
	if got := pixelAt(s, 20, 10); got.R != 0 {
		t.Errorf("off-line pixel = %+v, want black", got)
	}
}

func TestStrokeHonorsTransform(t *testing.T) {
	s := New(40, 40)
	s.Clear(draft.RGB(0, 0, 0))
	// World (1, 1) maps to device (20, 20) under scale 10 + translate 10.
	s.SetTransform(draft.Translate(10, 10).Multiply(draft.Scale(10, 10)))
	s.SetColor(draft.RGB(1, 1, 1))
	s.SetLineWidth(0.2) // 2 device pixels
	s.MoveTo(0, 1)
	s.LineTo(2, 1)
	s.Stroke()

	if got := pixelAt(s, 20, 20); got.R < 200 {
		t.Errorf("transformed line missing at (20,20): %+v", got)
	}
}

func TestDashedStrokeLeavesGaps(t *testing.T) {
	s := New(100, 20)
	s.Clear(draft.RGB(0, 0, 0))
	s.SetColor(draft.RGB(1, 1, 1))
	s.SetLineWidth(2)
	s.SetDash(10, 10)
	s.MoveTo(0, 10)
	s.LineTo(100, 10)
	s.Stroke()

	lit := 0
	for x := 0; x < 100; x++ {
		if pixelAt(s, x, 10).R > 128 {
			lit++
		}
	}
	if lit < 30 || lit > 70 {
		t.Errorf("dashed line lit %d of 100 pixels, want roughly half", lit)
	}

	s.ClearDash()
	s.MoveTo(0, 10)
	s.LineTo(100, 10)
	s.Stroke()
	lit = 0
	for x := 0; x < 100; x++ {
		if pixelAt(s, x, 10).R > 128 {
			lit++
		}
	}
	if lit < 95 {
		t.Errorf("solid line lit %d of 100 pixels, want all", lit)
	}
}

func TestArcStroke(t *testing.T) {
	s := New(60, 60)
	s.Clear(draft.RGB(0, 0, 0))
	s.SetColor(draft.RGB(1, 1, 1))
	s.SetLineWidth(2)
	s.Arc(30, 30, 20, 0, 6.283185307179586)
	s.Stroke()

	if got := pixelAt(s, 50, 30); got.R < 100 {
		t.Errorf("circle edge pixel = %+v, want lit", got)
	}
	if got := pixelAt(s, 30, 30); got.R != 0 {
		t.Errorf("circle center pixel = %+v, want unlit", got)
	}
}

func TestDrawTextMarksPixels(t *testing.T) {
	s := New(120, 40)
	s.Clear(draft.RGB(0, 0, 0))
	s.SetColor(draft.RGB(1, 1, 1))
	s.DrawText("HELLO", 5, 5, 20)

	lit := 0
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.img.RGBAAt(x, y).R > 128 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawText produced no pixels")
	}
}

func TestEncodePNG(t *testing.T) {
	s := New(10, 10, WithBackground(draft.RGB(0, 0, 1)))
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty PNG output")
	}
	// PNG signature.
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("output does not start with the PNG signature")
	}
}

func TestSurfaceImplementsContract(t *testing.T) {
	var _ draft.Surface = New(1, 1)
}
