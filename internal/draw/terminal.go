package draw

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI sequences shared by the canvas and the UI text layer.
const (
	seqReset       = "\033[0m"
	seqClearScreen = "\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
)

// SGR layers for appendColor.
const (
	layerFg = 38
	layerBg = 48
)

// appendCursor appends a 1-based cursor position sequence.
func appendCursor(dst []byte, col, row int) []byte {
	dst = append(dst, "\033["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// appendColor appends a truecolour SGR sequence for the layer. Alpha is ignored.
func appendColor(dst []byte, layer int, c color.NRGBA) []byte {
	dst = append(dst, "\033["...)
	dst = strconv.AppendInt(dst, int64(layer), 10)
	dst = append(dst, ";2;"...)
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	return append(dst, 'm')
}

// ChunkWriter accumulates UI text for terminal output and writes in chunks for
// network flow over SSH. Canvas.Render and the text screens share one
// ChunkWriter per frame so a frame leaves in a single Flush.
type ChunkWriter struct {
	buf     strings.Builder
	bufw    *bufio.Writer
	scratch []byte
	offCol  int
	offRow  int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all cursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:    bufio.NewWriterSize(w, 8192),
		scratch: make([]byte, 0, 32),
		offCol:  offsetCol,
		offRow:  offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor positions the cursor. col and row are 1-based canvas coordinates.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.scratch = appendCursor(cw.scratch[:0], col+cw.offCol, row+cw.offRow)
	cw.buf.Write(cw.scratch)
}

// SetStyle switches the text colours until ResetStyle.
func (cw *ChunkWriter) SetStyle(fg, bg color.NRGBA) {
	cw.scratch = appendColor(cw.scratch[:0], layerFg, fg)
	cw.scratch = appendColor(cw.scratch, layerBg, bg)
	cw.buf.Write(cw.scratch)
}

// ResetStyle restores the terminal default colours.
func (cw *ChunkWriter) ResetStyle() {
	cw.buf.WriteString(seqReset)
}

// ClearScreen queues a full terminal clear with default colours.
func (cw *ChunkWriter) ClearScreen() {
	cw.buf.WriteString(seqReset + seqClearScreen)
}

// Write implements io.Writer for Canvas.Render.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes s at a 1-based canvas position.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// Len returns the number of bytes waiting for Flush.
func (cw *ChunkWriter) Len() int {
	return cw.buf.Len()
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks of
// maxChunkSize, then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data[:min(len(data), maxChunkSize)]
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		data = data[len(chunk):]
	}
	if err := cw.bufw.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// TermSizeFunc returns the terminal dimensions in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalSizeRawWith returns the terminal dimensions reported by sizeFunc.
func TerminalSizeRawWith(sizeFunc TermSizeFunc) (width, height int, err error) {
	return sizeFunc()
}

// MakeRaw puts the terminal behind fd into raw mode. The returned function
// restores the previous mode.
func MakeRaw(fd int) (restore func(), err error) {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, old) }, nil
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, seqClearScreen)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, seqHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, seqShowCursor)
}
