// Package gfx runs the spider runner in an 800x400 Ebitengine window.
package gfx

import (
	"context"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/spider-run/internal/assets"
)

// Sprites are the GPU-side images the renderer draws.
type Sprites struct {
	BackgroundDay   *ebiten.Image
	BackgroundNight *ebiten.Image
	Player          *ebiten.Image
	Coin            *ebiten.Image
	Heart           *ebiten.Image
	Spider          *ebiten.Image
}

// LoadSprites decodes the manifest from fsys and uploads the images.
// The error is an *assets.LoadError when a file is missing or corrupt.
func LoadSprites(ctx context.Context, fsys fs.FS, m assets.Manifest) (*Sprites, error) {
	set, err := assets.Load(ctx, fsys, m)
	if err != nil {
		return nil, err
	}

	return &Sprites{
		BackgroundDay:   ebiten.NewImageFromImage(set[assets.BackgroundDay]),
		BackgroundNight: ebiten.NewImageFromImage(set[assets.BackgroundNight]),
		Player:          ebiten.NewImageFromImage(set[assets.Player]),
		Coin:            ebiten.NewImageFromImage(set[assets.Coin]),
		Heart:           ebiten.NewImageFromImage(set[assets.Heart]),
		Spider:          ebiten.NewImageFromImage(set[assets.Spider]),
	}, nil
}
