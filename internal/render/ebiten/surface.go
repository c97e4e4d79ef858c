// Package ebiten draws the game with Ebitengine, on a desktop window or the
// browser canvas when built for js/wasm.
package ebiten

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/render"
)

// Image wraps an ebiten.Image so it can live in an asset.Catalog.
type Image struct {
	img *ebiten.Image
}

// NewImage converts a decoded image.
func NewImage(src image.Image) *Image {
	return &Image{img: ebiten.NewImageFromImage(src)}
}

// Size implements asset.Image.
func (i *Image) Size() (int, int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Surface implements render.Surface on top of an ebiten.Image.
type Surface struct {
	dst  *ebiten.Image
	font *text.GoTextFaceSource
}

var _ render.Surface = (*Surface)(nil)

// NewSurface creates a surface using the Go regular font for text.
func NewSurface() (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &Surface{font: src}, nil
}

// Target sets the image drawn to by subsequent calls.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Fill(c color.NRGBA) {
	if c.A == 0xff {
		s.dst.Fill(c)
		return
	}
	w, h := s.Size()
	s.FillRect(0, 0, w, h, c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokeRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

// DrawImage draws img stretched over the rectangle. Images of other
// backends are drawn as a grey box.
func (s *Surface) DrawImage(img asset.Image, x, y, w, h float64, opts render.ImageOptions) {
	src, ok := img.(*Image)
	if !ok {
		s.FillRect(x, y, w, h, color.NRGBA{0x80, 0x80, 0x80, 0xff})
		return
	}
	iw, ih := src.Size()
	if iw == 0 || ih == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	sx, sy := w/float64(iw), h/float64(ih)
	if opts.FlipX {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(x+w, y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
	}
	op.ColorScale.ScaleAlpha(float32(opts.EffectiveAlpha()))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(src.img, op)
}

// DrawTiled repeats img across the surface at height h, shifted left by offsetX.
func (s *Surface) DrawTiled(img asset.Image, offsetX, h float64) {
	iw, ih := img.Size()
	if iw <= 0 || ih <= 0 || h <= 0 {
		return
	}
	viewW, _ := s.Size()
	tileW := h * float64(iw) / float64(ih)
	start := -math.Mod(offsetX, tileW)
	if start > 0 {
		start -= tileW
	}
	for x := start; x < viewW; x += tileW {
		s.DrawImage(img, x, 0, tileW, h, render.ImageOptions{})
	}
}

// Text draws s with its baseline at y.
func (s *Surface) Text(str string, x, y float64, opts render.TextOptions) {
	face := &text.GoTextFace{Source: s.font, Size: opts.Size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(opts.Color)
	if opts.Align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(s.dst, str, face, op)
}
