package draw

import (
	"image"
	"image/color"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/render"
)

// Block characters for drawing.
const (
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// cell is what one terminal character shows: the upper and lower sub-pixel.
type cell struct {
	top, bottom color.NRGBA
}

// label is text queued for output on top of the pixels.
type label struct {
	col, row int
	text     string
	fg       color.NRGBA
}

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Drawing uses logical coordinates that are scaled to
// terminal pixels. Only cells that changed since the previous Render are emitted.
type Canvas struct {
	termWidth      int           // Actual terminal columns
	termHeight     int           // Actual terminal rows
	subPixelHeight int           // termHeight * 2
	pixels         []color.NRGBA // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	prev      []cell // Cells as last emitted
	prevValid []bool // False forces the cell to be emitted next Render
	labels    []label

	renderBuf strings.Builder
	scratch   []byte
}

var _ render.Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the render pass.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A change in size forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]color.NRGBA, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termWidth*termHeight)
		c.prevValid = make([]bool, termWidth*termHeight)
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	clear(c.prevValid)
}

// MarkTextDirty forces the cells under text written outside the canvas
// (1-based canvas coordinates) to be redrawn next frame.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < min(col-1+width, c.termWidth); x++ {
		c.prevValid[r*c.termWidth+x] = false
	}
}

// Clear resets all pixels to transparent black and drops queued text.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.labels = c.labels[:0]
}

// blend composites src over the pixel at actual terminal coordinates.
func (c *Canvas) blend(x, y int, src color.NRGBA) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight || src.A == 0 {
		return
	}
	i := y*c.termWidth + x
	if src.A == 0xff {
		c.pixels[i] = src
		return
	}
	c.pixels[i] = Blend(c.pixels[i], src)
}

// Blend composites src over dst. The result is opaque when dst is.
func Blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 0xff
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	outA := float64(src.A) + float64(dst.A)*(1-a)
	return color.NRGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: uint8(math.Round(math.Min(outA, 0xff))),
	}
}

// pixelRect converts a logical rectangle to a half-open pixel range.
func (c *Canvas) pixelRect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(x * c.scaleX))
	y0 = int(math.Floor(y * c.scaleY))
	x1 = int(math.Ceil((x + w) * c.scaleX))
	y1 = int(math.Ceil((y + h) * c.scaleY))
	return max(x0, 0), max(y0, 0), min(x1, c.termWidth), min(y1, c.subPixelHeight)
}

// Size returns the logical size. Implements render.Surface.
func (c *Canvas) Size() (float64, float64) {
	return c.logicalWidth, c.logicalHeight
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.NRGBA) {
	for i := range c.pixels {
		if col.A == 0xff {
			c.pixels[i] = col
		} else {
			c.pixels[i] = Blend(c.pixels[i], col)
		}
	}
}

// FillRect paints a logical rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0, x1, y1 := c.pixelRect(x, y, w, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, col)
		}
	}
}

// StrokeRect outlines a logical rectangle one pixel wide.
func (c *Canvas) StrokeRect(x, y, w, h float64, col color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0, x1, y1 := c.pixelRect(x, y, w, h)
	for px := x0; px < x1; px++ {
		c.blend(px, y0, col)
		if y1-1 > y0 {
			c.blend(px, y1-1, col)
		}
	}
	for py := y0 + 1; py < y1-1; py++ {
		c.blend(x0, py, col)
		if x1-1 > x0 {
			c.blend(x1-1, py, col)
		}
	}
}

// DrawImage samples img with nearest-neighbour scaling into a logical rectangle.
// Images that are not backed by an image.Image are drawn as a grey box.
func (c *Canvas) DrawImage(img asset.Image, x, y, w, h float64, opts render.ImageOptions) {
	if w <= 0 || h <= 0 {
		return
	}
	src, ok := img.(image.Image)
	if !ok {
		c.FillRect(x, y, w, h, color.NRGBA{0x80, 0x80, 0x80, 0xff})
		return
	}
	alpha := opts.EffectiveAlpha()
	b := src.Bounds()

	// Unclamped pixel bounds so partially visible images sample correctly.
	fx0 := math.Floor(x * c.scaleX)
	fy0 := math.Floor(y * c.scaleY)
	pw := math.Ceil((x+w)*c.scaleX) - fx0
	ph := math.Ceil((y+h)*c.scaleY) - fy0
	if pw <= 0 || ph <= 0 {
		return
	}
	x0, y0, x1, y1 := c.pixelRect(x, y, w, h)
	for py := y0; py < y1; py++ {
		v := (float64(py) - fy0 + 0.5) / ph
		sy := b.Min.Y + min(int(v*float64(b.Dy())), b.Dy()-1)
		for px := x0; px < x1; px++ {
			u := (float64(px) - fx0 + 0.5) / pw
			if opts.FlipX {
				u = 1 - u
			}
			sx := b.Min.X + min(max(int(u*float64(b.Dx())), 0), b.Dx()-1)
			p := color.NRGBAModel.Convert(src.At(sx, sy)).(color.NRGBA)
			p.A = uint8(float64(p.A) * alpha)
			c.blend(px, py, p)
		}
	}
}

// DrawTiled repeats img horizontally across the canvas at height h, shifted left by offsetX.
func (c *Canvas) DrawTiled(img asset.Image, offsetX, h float64) {
	iw, ih := img.Size()
	if iw <= 0 || ih <= 0 || h <= 0 {
		return
	}
	tileW := h * float64(iw) / float64(ih)
	start := -math.Mod(offsetX, tileW)
	if start > 0 {
		start -= tileW
	}
	for x := start; x < c.logicalWidth; x += tileW {
		c.DrawImage(img, x, 0, tileW, h, render.ImageOptions{})
	}
}

// Text queues a string to be written over the pixels on the next Render.
// The logical y is the text baseline.
func (c *Canvas) Text(s string, x, y float64, opts render.TextOptions) {
	col, row := c.LogicalToTerminal(x, y)
	if opts.Align == render.AlignCenter {
		col -= utf8.RuneCountInString(s) / 2
	}
	// Baseline sits on the bottom of the text row.
	row = max(row-1, 1)
	c.labels = append(c.labels, label{col: col, row: row, text: s, fg: opts.Color})
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs changed cells and queued text to the writer.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var lastFG, lastBG color.NRGBA
	colorSet := false
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		nextCol := -1 // Column the cursor is at after the previous write

		for col := 0; col < c.termWidth; col++ {
			cur := cell{
				top:    opaque(c.pixels[topOffset+col]),
				bottom: opaque(c.pixels[bottomOffset+col]),
			}
			i := row*c.termWidth + col
			if c.prevValid[i] && c.prev[i] == cur {
				continue
			}
			c.prev[i] = cur
			c.prevValid[i] = true

			if col != nextCol {
				c.moveCursor(col+1, row+1)
			}
			if !colorSet || cur.top != lastFG {
				c.writeColor(layerFg, cur.top)
				lastFG = cur.top
			}
			if !colorSet || cur.bottom != lastBG {
				c.writeColor(layerBg, cur.bottom)
				lastBG = cur.bottom
			}
			colorSet = true
			c.renderBuf.WriteRune(BlockUpperHalf)
			nextCol = col + 1
		}
	}

	for _, l := range c.labels {
		c.renderLabel(l)
	}
	if c.renderBuf.Len() > 0 {
		c.renderBuf.WriteString(seqReset)
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// renderLabel writes text clipped to the canvas, on the background of the
// cells it covers, and invalidates those cells for the next frame.
func (c *Canvas) renderLabel(l label) {
	row := l.row - 1
	if row < 0 || row >= c.termHeight {
		return
	}
	runes := []rune(l.text)
	start := l.col - 1
	if start < 0 {
		runes = runes[min(-start, len(runes)):]
		start = 0
	}
	if start+len(runes) > c.termWidth {
		runes = runes[:max(c.termWidth-start, 0)]
	}
	if len(runes) == 0 {
		return
	}

	c.moveCursor(start+1, row+1)
	c.writeColor(layerFg, opaque(l.fg))
	var lastBG color.NRGBA
	for i, r := range runes {
		idx := row*c.termWidth + start + i
		bg := opaque(Blend(c.prev[idx].top, color.NRGBA{0, 0, 0, 0x60}))
		if i == 0 || bg != lastBG {
			c.writeColor(layerBg, bg)
			lastBG = bg
		}
		c.renderBuf.WriteRune(r)
		c.prevValid[idx] = false
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.scratch = appendCursor(c.scratch[:0], col+c.offsetCol, row+c.offsetRow)
	c.renderBuf.Write(c.scratch)
}

// writeColor emits a truecolour SGR sequence; layer is layerFg or layerBg.
func (c *Canvas) writeColor(layer int, col color.NRGBA) {
	c.scratch = appendColor(c.scratch[:0], layer, col)
	c.renderBuf.Write(c.scratch)
}

// opaque drops the alpha channel; the terminal has nothing to blend with.
func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.WriteString(seqReset)
	at := func(row, col int) {
		c.scratch = appendCursor(c.scratch[:0], col, row)
		buf.Write(c.scratch)
	}
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			at(top, left)
			buf.WriteString("┌" + line + "┐")
			at(bottom, left)
			buf.WriteString("└" + line + "┘")
		} else {
			at(top, c.offsetCol+1)
			buf.WriteString(line)
			at(bottom, c.offsetCol+1)
			buf.WriteString(line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			at(row, left)
			buf.WriteString("│")
			at(row, right)
			buf.WriteString("│")
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
