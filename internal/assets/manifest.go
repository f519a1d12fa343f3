// Package assets loads the sprite images the graphical front-end draws.
//
// Images are addressed by logical name through a Manifest and decoded from
// any fs.FS: a directory on disk, or the placeholder sprites embedded in the
// binary.
package assets

import (
	"embed"
	"io/fs"
	"sort"
)

// Logical sprite names.
const (
	BackgroundDay   = "bg_day"
	BackgroundNight = "bg_night"
	Player          = "player"
	Coin            = "coin"
	Heart           = "heart"
	Spider          = "spider"
)

// Manifest maps logical names to paths inside the asset filesystem.
type Manifest map[string]string

// DefaultManifest lists the six sprites the runner needs.
func DefaultManifest() Manifest {
	return Manifest{
		BackgroundDay:   "bg_day.png",
		BackgroundNight: "bg_night.png",
		Player:          "player.png",
		Coin:            "coin.png",
		Heart:           "heart.png",
		Spider:          "spider.png",
	}
}

// Names returns the logical names in sorted order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//go:embed sprites/*.png
var embedded embed.FS

// Embedded returns the built-in placeholder sprites, laid out to match
// DefaultManifest.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		// sprites/ is part of the embed pattern; Sub cannot fail here.
		panic(err)
	}
	return sub
}
