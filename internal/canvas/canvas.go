// Package canvas defines the measurement and drawing capability the bar core
// renders through. The core never owns pixels: backends in package surface
// implement Surface, and Recorder captures operations for tests and dumps.
//
// Coordinates are in bar units (pixels for raster backends). Colors are
// "#rrggbb" strings.
package canvas

// Point is a polygon or path vertex.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Measurer reports intrinsic sizes of content.
type Measurer interface {
	// TextWidth returns the advance width of s in the current font.
	TextWidth(s string) int
	// ImageSize returns the intrinsic size of the image at path, or 0x0 when
	// it cannot be loaded.
	ImageSize(path string) (w, h int)
}

// Surface is a drawing target with a pen and a save/restore stack.
type Surface interface {
	Measurer

	// Save pushes the drawing state (pen color).
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()
	// SetPen sets the color used by DrawText and StrokePath.
	SetPen(color string)

	// DrawText draws s left-aligned and vertically centered in the box.
	DrawText(x, y, w, h int, s string)
	// DrawTextRight draws s right-aligned and vertically centered in the box.
	DrawTextRight(x, y, w, h int, s string)
	// DrawImage draws the image at path with its top-left corner at x, y.
	DrawImage(x, y int, path string)
	// FillRect fills a rectangle with color.
	FillRect(x, y, w, h int, color string)
	// FillPolygon fills a closed polygon with color.
	FillPolygon(pts []Point, color string)
	// StrokePath strokes an open path with the current pen.
	StrokePath(pts []Point)
}
