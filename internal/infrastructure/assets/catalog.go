// Package assets loads the images a frame needs, addressed by their path.
package assets

import (
	"io/fs"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Catalog loads images lazily from a file system and caches them.
// A missing image is warned about once and drawn as nothing.
type Catalog struct {
	fsys    fs.FS
	log     *log.Logger
	load    func(fs.FS, string) (*ebiten.Image, error)
	images  map[string]*ebiten.Image
	missing map[string]bool
}

// NewCatalog creates a catalog over fsys
func NewCatalog(fsys fs.FS, logger *log.Logger) *Catalog {
	return &Catalog{
		fsys: fsys,
		log:  logger,
		load: func(fsys fs.FS, path string) (*ebiten.Image, error) {
			img, _, err := ebitenutil.NewImageFromFileSystem(fsys, path)
			return img, err
		},
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// Image returns the image at path, or nil if it cannot be loaded
func (c *Catalog) Image(path string) *ebiten.Image {
	if path == "" || c.missing[path] {
		return nil
	}
	if img, ok := c.images[path]; ok {
		return img
	}
	img, err := c.load(c.fsys, path)
	if err != nil {
		c.missing[path] = true
		c.log.Warn("image unavailable", "path", path, "error", err)
		return nil
	}
	c.images[path] = img
	return img
}

// Preload loads every listed image ahead of the first frame
func (c *Catalog) Preload(paths []string) {
	for _, p := range paths {
		c.Image(p)
	}
}

// Missing returns the sorted paths that failed to load
func (c *Catalog) Missing() []string {
	out := make([]string, 0, len(c.missing))
	for p := range c.missing {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
