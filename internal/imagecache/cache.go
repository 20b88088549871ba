// Package imagecache decodes the images referenced by markup and layout
// icons. Each path is decoded at most once until it is invalidated.
package imagecache

import (
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/daviddao/hlbar/internal/logging"
)

type entry struct {
	img image.Image
	err error
}

// Cache maps file paths to decoded images. Failed loads are cached too, so
// a missing icon is only reported once. A Cache is not safe for concurrent
// use; the bar uses it from its event loop only.
type Cache struct {
	log     *slog.Logger
	entries map[string]entry
}

// New returns an empty cache.
func New(log *slog.Logger) *Cache {
	return &Cache{
		log:     logging.Component(log, "imagecache"),
		entries: make(map[string]entry),
	}
}

// Get returns the decoded image at path.
func (c *Cache) Get(path string) (image.Image, error) {
	if e, ok := c.entries[path]; ok {
		return e.img, e.err
	}
	img, err := imaging.Open(path)
	if err != nil {
		c.log.Warn("image unavailable", "path", path, "err", err)
	}
	c.entries[path] = entry{img: img, err: err}
	return img, err
}

// Size returns the intrinsic size of the image at path, or 0x0 when it
// cannot be loaded.
func (c *Cache) Size(path string) (int, int) {
	if path == "" {
		return 0, 0
	}
	img, err := c.Get(path)
	if err != nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Invalidate drops the entry for path.
func (c *Cache) Invalidate(path string) {
	delete(c.entries, path)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	clear(c.entries)
}

// Len returns the number of cached paths, including failed loads.
func (c *Cache) Len() int {
	return len(c.entries)
}
