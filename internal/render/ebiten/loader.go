package ebiten

import (
	"context"
	"io/fs"

	"github.com/tomz197/gunrunner/internal/asset"
)

// Loader reads PNG and WAV files and uploads images to the GPU.
type Loader struct {
	files asset.FileLoader
}

var _ asset.Loader = Loader{}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) Loader {
	return Loader{files: asset.FileLoader{FS: fsys}}
}

func (l Loader) LoadImage(ctx context.Context, name asset.Name) (asset.Image, error) {
	img, err := l.files.LoadImage(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewImage(img.(asset.Bitmap).Image), nil
}

func (l Loader) LoadSound(ctx context.Context, name asset.Name) ([]byte, error) {
	return l.files.LoadSound(ctx, name)
}
