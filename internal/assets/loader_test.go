package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func fullFS(t *testing.T) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, path := range DefaultManifest() {
		fsys[path] = &fstest.MapFile{Data: pngBytes(t, 8, 4)}
	}
	return fsys
}

func TestLoadAll(t *testing.T) {
	set, err := Load(context.Background(), fullFS(t), DefaultManifest())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(set) != 6 {
		t.Fatalf("expected 6 images, got %d", len(set))
	}
	for _, name := range DefaultManifest().Names() {
		img, ok := set[name]
		if !ok {
			t.Errorf("missing %q", name)
			continue
		}
		if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
			t.Errorf("%s bounds = %v, expected 8x4", name, b)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	fsys := fullFS(t)
	delete(fsys, "spider.png")

	set, err := Load(context.Background(), fsys, DefaultManifest())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if set != nil {
		t.Error("failed load should not return a partial set")
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if le.Name != Spider || le.Path != "spider.png" {
		t.Errorf("LoadError = %+v, expected spider.png", le)
	}
	if err.Error() != "load error: spider.png" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped fs.ErrNotExist, got %v", le.Err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	fsys := fullFS(t)
	fsys["coin.png"] = &fstest.MapFile{Data: []byte("not a png")}

	_, err := Load(context.Background(), fsys, DefaultManifest())

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if le.Path != "coin.png" {
		t.Errorf("failing path = %q, expected coin.png", le.Path)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, fullFS(t), DefaultManifest())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEmbeddedMatchesManifest(t *testing.T) {
	set, err := Load(context.Background(), Embedded(), DefaultManifest())
	if err != nil {
		t.Fatalf("embedded sprites failed to load: %v", err)
	}
	if len(set) != len(DefaultManifest()) {
		t.Errorf("expected %d embedded sprites, got %d", len(DefaultManifest()), len(set))
	}
}
