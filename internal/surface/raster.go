package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/daviddao/hlbar/internal/canvas"
	"github.com/daviddao/hlbar/internal/imagecache"
)

// Raster is a canvas.Surface backed by an RGBA image. Text uses a fixed
// 7x13 bitmap face.
type Raster struct {
	img    *image.RGBA
	face   font.Face
	images *imagecache.Cache

	pen   color.RGBA
	stack []color.RGBA
}

var _ canvas.Surface = (*Raster)(nil)

// NewRaster returns a transparent w x h raster. images may be nil, in which
// case every image measures 0x0.
func NewRaster(w, h int, images *imagecache.Cache) *Raster {
	return &Raster{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		face:   basicfont.Face7x13,
		images: images,
		pen:    color.RGBA{A: 0xff},
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// WriteFile encodes the raster to path; the format follows the extension.
func (r *Raster) WriteFile(path string) error {
	if err := imaging.Save(r.img, path); err != nil {
		return fmt.Errorf("write raster %s: %w", path, err)
	}
	return nil
}

func (r *Raster) TextWidth(s string) int {
	return font.MeasureString(r.face, s).Ceil()
}

func (r *Raster) ImageSize(path string) (int, int) {
	if r.images == nil {
		return 0, 0
	}
	return r.images.Size(path)
}

func (r *Raster) Save() {
	r.stack = append(r.stack, r.pen)
}

func (r *Raster) Restore() {
	if n := len(r.stack); n > 0 {
		r.pen = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *Raster) SetPen(c string) {
	r.pen = parseColor(c)
}

func (r *Raster) DrawText(x, y, w, h int, s string) {
	m := r.face.Metrics()
	textH := (m.Ascent + m.Descent).Ceil()
	baseline := y + (h-textH)/2 + m.Ascent.Ceil()

	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.pen),
		Face: r.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func (r *Raster) DrawTextRight(x, y, w, h int, s string) {
	r.DrawText(x+w-r.TextWidth(s), y, w, h, s)
}

func (r *Raster) DrawImage(x, y int, path string) {
	if r.images == nil {
		return
	}
	src, err := r.images.Get(path)
	if err != nil {
		return
	}
	b := src.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(r.img, dst, src, b.Min, draw.Over)
}

func (r *Raster) FillRect(x, y, w, h int, c string) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.Draw(r.img, image.Rect(x, y, x+w, y+h), image.NewUniform(parseColor(c)), image.Point{}, draw.Over)
}

func (r *Raster) FillPolygon(pts []canvas.Point, c string) {
	if len(pts) < 3 {
		return
	}
	z := r.rasterizer()
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(parseColor(c)), image.Point{})
}

// StrokePath draws each segment as a one unit wide quad.
func (r *Raster) StrokePath(pts []canvas.Point) {
	if len(pts) < 2 {
		return
	}
	z := r.rasterizer()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		// Half-width normal.
		nx, ny := float32(-dy/l/2), float32(dx/l/2)
		ax, ay, bx, by := float32(a.X), float32(a.Y), float32(b.X), float32(b.Y)
		z.MoveTo(ax+nx, ay+ny)
		z.LineTo(bx+nx, by+ny)
		z.LineTo(bx-nx, by-ny)
		z.LineTo(ax-nx, ay-ny)
		z.ClosePath()
	}
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(r.pen), image.Point{})
}

func (r *Raster) rasterizer() *vector.Rasterizer {
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}
