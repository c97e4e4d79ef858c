package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
)

// Bitmap is an image decoded from a file.
type Bitmap struct {
	image.Image
}

// Size implements Image.
func (b Bitmap) Size() (int, int) {
	r := b.Bounds()
	return r.Dx(), r.Dy()
}

// FileLoader reads <name>.png images and <name>.wav sounds from a file system.
type FileLoader struct {
	FS fs.FS
}

var _ Loader = FileLoader{}

// LoadImage decodes a PNG image.
func (l FileLoader) LoadImage(ctx context.Context, name Name) (Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := l.FS.Open(string(name) + ".png")
	if err != nil {
		return nil, wrapMissing(name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return Bitmap{img}, nil
}

// LoadSound reads the raw WAV data.
func (l FileLoader) LoadSound(ctx context.Context, name Name) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.FS, string(name)+".wav")
	if err != nil {
		return nil, wrapMissing(name, err)
	}
	return data, nil
}

func wrapMissing(name Name, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", name, ErrMissing)
	}
	return fmt.Errorf("open %s: %w", name, err)
}
