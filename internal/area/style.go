package area

import (
	"path/filepath"

	"github.com/daviddao/hlbar/internal/colorclock"
	"github.com/daviddao/hlbar/internal/markup"
)

// Style holds the colors and metrics areas render with. Areas keep a pointer
// to a shared Style, so a theme reload takes effect on the next redraw.
type Style struct {
	Normal  string
	Low     string
	Focused string
	Urgent  string

	ArrowWidth int
	IconDir    string
	Clock      colorclock.Steepness
}

// DefaultStyle returns the stock dark theme.
func DefaultStyle() *Style {
	return &Style{
		Normal:     "#9e9e9e",
		Low:        "#4e4e4e",
		Focused:    "#3d3dff",
		Urgent:     "#ff7e3d",
		ArrowWidth: 8,
		Clock:      colorclock.Default,
	}
}

// PenColor resolves a markup pen to a color.
func (s *Style) PenColor(p markup.Pen) string {
	if p == markup.PenLow {
		return s.Low
	}
	return s.Normal
}

// IconPath returns the icon file for a layout glyph.
func (s *Style) IconPath(g Glyph) string {
	return filepath.Join(s.IconDir, g.IconName())
}
