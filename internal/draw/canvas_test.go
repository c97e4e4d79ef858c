package draw

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/render"
)

var (
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// newCanvas maps a 100x100 logical space onto 10 columns by 5 rows (10x10 pixels).
func newCanvas() *Canvas {
	return NewScaledCanvas(10, 5, 100, 100)
}

func (c *Canvas) pixel(x, y int) color.NRGBA {
	return c.pixels[y*c.termWidth+x]
}

func TestFillRectScales(t *testing.T) {
	c := newCanvas()
	c.FillRect(20, 30, 20, 10, red)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 4 && y == 3
			if got := c.pixel(x, y) == red; got != inside {
				t.Fatalf("pixel(%d,%d) red = %v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestFillRectClipsToCanvas(t *testing.T) {
	c := newCanvas()
	c.FillRect(-50, -50, 500, 500, blue)
	for i, p := range c.pixels {
		if p != blue {
			t.Fatalf("pixel %d = %v, want blue", i, p)
		}
	}
}

func TestBlendHalfAlpha(t *testing.T) {
	got := Blend(color.NRGBA{0, 0, 0, 0xff}, color.NRGBA{0xff, 0xff, 0xff, 0x80})
	if got.R < 0x7f || got.R > 0x81 || got.A != 0xff {
		t.Fatalf("Blend() = %v, want mid grey, opaque", got)
	}
}

func TestStrokeRectLeavesInterior(t *testing.T) {
	c := newCanvas()
	c.StrokeRect(0, 0, 50, 50, white)
	if c.pixel(0, 0) != white || c.pixel(4, 4) != white {
		t.Fatal("corners should be stroked")
	}
	if c.pixel(2, 2) == white {
		t.Fatal("interior should stay empty")
	}
}

func TestDrawImageFlip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, red)
	src.Set(1, 0, blue)
	img := asset.Bitmap{Image: src}

	c := newCanvas()
	c.DrawImage(img, 0, 0, 20, 10, render.ImageOptions{})
	if c.pixel(0, 0) != red || c.pixel(1, 0) != blue {
		t.Fatalf("unflipped = %v %v", c.pixel(0, 0), c.pixel(1, 0))
	}

	c.Clear()
	c.DrawImage(img, 0, 0, 20, 10, render.ImageOptions{FlipX: true})
	if c.pixel(0, 0) != blue || c.pixel(1, 0) != red {
		t.Fatalf("flipped = %v %v", c.pixel(0, 0), c.pixel(1, 0))
	}
}

func TestDrawTiledCoversWidth(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, blue)
		}
	}
	c := newCanvas()
	c.DrawTiled(asset.Bitmap{Image: src}, 17, 100)
	for i, p := range c.pixels {
		if p != blue {
			t.Fatalf("pixel %d = %v, want blue", i, p)
		}
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := newCanvas()
	c.Fill(blue)

	var first bytes.Buffer
	c.Render(&first)
	if n := strings.Count(first.String(), string(BlockUpperHalf)); n != 50 {
		t.Fatalf("first render cells = %d, want 50", n)
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", second.String())
	}

	c.FillRect(0, 0, 10, 10, red)
	var third bytes.Buffer
	c.Render(&third)
	if n := strings.Count(third.String(), string(BlockUpperHalf)); n != 1 {
		t.Fatalf("changed cells = %d, want 1", n)
	}
	if !strings.Contains(third.String(), "\033[38;2;255;0;0m") {
		t.Fatalf("missing red foreground in %q", third.String())
	}
}

func TestTextInvalidatesCells(t *testing.T) {
	c := newCanvas()
	c.Fill(blue)
	c.Text("HI", 0, 40, render.TextOptions{Color: white})

	var out bytes.Buffer
	c.Render(&out)
	if !strings.Contains(out.String(), "HI") {
		t.Fatalf("text missing from %q", out.String())
	}

	// The same pixels without text must repaint the cells the text covered.
	c.Clear()
	c.Fill(blue)
	out.Reset()
	c.Render(&out)
	if n := strings.Count(out.String(), string(BlockUpperHalf)); n != 2 {
		t.Fatalf("repainted cells = %d, want 2", n)
	}
}

func TestForceRedraw(t *testing.T) {
	c := newCanvas()
	c.Fill(blue)
	c.Render(&bytes.Buffer{})
	c.ForceRedraw()

	var out bytes.Buffer
	c.Render(&out)
	if n := strings.Count(out.String(), string(BlockUpperHalf)); n != 50 {
		t.Fatalf("cells after ForceRedraw = %d, want 50", n)
	}
}

func TestRenderBorderOnlyWithOffset(t *testing.T) {
	c := newCanvas()
	var out bytes.Buffer
	c.RenderBorder(&out)
	if out.Len() != 0 {
		t.Fatal("no border expected without offset")
	}

	c.SetOffset(2, 1)
	c.RenderBorder(&out)
	if !strings.Contains(out.String(), "┌") || !strings.Contains(out.String(), "│") {
		t.Fatalf("border missing corners or sides: %q", out.String())
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := newCanvas()
	col, row := c.LogicalToTerminal(50, 50)
	if col != 6 || row != 3 {
		t.Fatalf("LogicalToTerminal(50,50) = %d,%d, want 6,3", col, row)
	}
}
