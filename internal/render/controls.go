package render

import (
	"image/color"

	"github.com/tomz197/gunrunner/internal/input"
)

var (
	colorButton        = color.NRGBA{0x88, 0x88, 0x88, 0x99}
	colorButtonPressed = color.NRGBA{0xaa, 0xaa, 0xaa, 0x99}
	colorButtonBorder  = color.NRGBA{0xff, 0xff, 0xff, 0x99}
)

// Controls draws the on-screen touch buttons, highlighting held ones.
func Controls(s Surface, pad *input.TouchPad) {
	l := pad.Layout
	for _, b := range l.Buttons {
		r := b.Rect
		fill := colorButton
		if pad.Pressed(b.Button) {
			fill = colorButtonPressed
		}
		s.FillRect(r.X, r.Y, r.W, r.H, fill)
		s.StrokeRect(r.X, r.Y, r.W, r.H, colorButtonBorder)
		s.Text(b.Button.Glyph(), r.X+r.W/2, r.Y+r.H*0.65, TextOptions{
			Size:  l.Size * 0.4,
			Color: ColorText,
			Align: AlignCenter,
		})
	}
}
