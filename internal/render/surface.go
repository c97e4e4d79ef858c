// Package render turns a world snapshot into draw requests against a Surface.
//
// The pass is backend neutral: the terminal canvas and the ebiten canvas both
// implement Surface, and tests record the calls with a Recorder.
package render

import (
	"image/color"

	"github.com/tomz197/gunrunner/internal/asset"
)

// Align controls horizontal text placement relative to the anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// ImageOptions controls how DrawImage places an image.
type ImageOptions struct {
	FlipX bool
	Alpha float64 // 0..1; 0 is treated as opaque
}

// TextOptions controls how Text places a string. Y is the baseline.
type TextOptions struct {
	Size  float64
	Color color.NRGBA
	Align Align
}

// Surface is a 2D drawing target in device pixels.
type Surface interface {
	Size() (width, height float64)
	Fill(c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
	StrokeRect(x, y, w, h float64, c color.NRGBA)
	DrawImage(img asset.Image, x, y, w, h float64, opts ImageOptions)
	// DrawTiled repeats img across the surface, scaled to height h and
	// shifted left by offsetX.
	DrawTiled(img asset.Image, offsetX, h float64)
	Text(s string, x, y float64, opts TextOptions)
}

// Assets looks up loaded images.
type Assets interface {
	Image(name asset.Name) (asset.Image, bool)
}

// EffectiveAlpha maps the zero value to fully opaque.
func (o ImageOptions) EffectiveAlpha() float64 {
	if o.Alpha <= 0 {
		return 1
	}
	return min(o.Alpha, 1)
}
