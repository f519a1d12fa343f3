package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Set holds decoded images by logical name.
type Set map[string]image.Image

// LoadError reports the first asset that failed to open or decode.
type LoadError struct {
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "load error: " + e.Path
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load decodes every image in the manifest concurrently. It is all-or-nothing:
// on the first failure the remaining work is abandoned and a *LoadError is
// returned.
func Load(ctx context.Context, fsys fs.FS, m Manifest) (Set, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	set := make(Set, len(m))

	for _, name := range m.Names() {
		path := m[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return &LoadError{Name: name, Path: path, Err: err}
			}
			img, err := decode(fsys, path)
			if err != nil {
				return &LoadError{Name: name, Path: path, Err: err}
			}
			mu.Lock()
			set[name] = img
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

func decode(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
