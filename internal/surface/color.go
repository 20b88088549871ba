// Package surface holds the concrete drawing backends: Raster paints into
// an RGBA image for PNG output, Term paints a row of terminal cells.
package surface

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// parseColor converts "#rrggbb" to an opaque color. Malformed input yields
// opaque black; config validation rejects such values before they get here.
func parseColor(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
