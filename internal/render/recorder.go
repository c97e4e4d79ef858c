package render

import (
	"image/color"

	"github.com/tomz197/gunrunner/internal/asset"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpFill OpKind = iota
	OpFillRect
	OpStrokeRect
	OpImage
	OpTiled
	OpText
)

// Op is one recorded draw call. Fields not used by the kind are zero.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	Color      color.NRGBA
	Image      asset.Image
	Options    ImageOptions
	Text       string
	TextOpts   TextOptions
}

// Recorder is a Surface that records every call.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates a recorder with the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Fill(c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, W: r.Width, H: r.Height, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawImage(img asset.Image, x, y, w, h float64, opts ImageOptions) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Image: img, Options: opts})
}

func (r *Recorder) DrawTiled(img asset.Image, offsetX, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpTiled, X: offsetX, H: h, Image: img})
}

func (r *Recorder) Text(s string, x, y float64, opts TextOptions) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: s, TextOpts: opts})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded calls of one kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the recorded strings in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
