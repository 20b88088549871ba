package area

import (
	"regexp"

	"github.com/daviddao/hlbar/internal/canvas"
)

// Glyph is the window layout shown by a LayoutIndicator.
type Glyph int

const (
	Tiled Glyph = iota
	Maximized
	Floating
)

// Symbol is the textual form drawn when the icon is unavailable.
func (g Glyph) Symbol() string {
	switch g {
	case Tiled:
		return "[]="
	case Maximized:
		return "[M]"
	case Floating:
		return "><>"
	}
	return "?"
}

// IconName is the icon file name under the style's icon directory.
func (g Glyph) IconName() string {
	switch g {
	case Tiled:
		return "tiled.png"
	case Maximized:
		return "maximized.png"
	case Floating:
		return "floating.png"
	}
	return ""
}

// Patterns are anchored at the start and tried in order.
var layoutPatterns = []struct {
	re    *regexp.Regexp
	glyph Glyph
}{
	{regexp.MustCompile(`^\[\]=`), Tiled},
	{regexp.MustCompile(`^\[.*\]`), Maximized},
	{regexp.MustCompile(`^><>`), Floating},
}

// MatchGlyph returns the glyph for a layout symbol reported by the window
// manager.
func MatchGlyph(raw string) (Glyph, bool) {
	for _, p := range layoutPatterns {
		if p.re.MatchString(raw) {
			return p.glyph, true
		}
	}
	return 0, false
}

// LayoutIndicator shows the current window layout as an icon.
type LayoutIndicator struct {
	base
	glyph Glyph
}

// Glyph returns the selected glyph.
func (a *LayoutIndicator) Glyph() Glyph {
	return a.glyph
}

// SetText selects a glyph and reports a change only when the selection
// differs. Unmatched text leaves the selection alone.
func (a *LayoutIndicator) SetText(raw string) bool {
	g, ok := MatchGlyph(raw)
	if !ok || g == a.glyph {
		return false
	}
	a.glyph = g
	return true
}

func (a *LayoutIndicator) Width(m canvas.Measurer) int {
	if w, _ := m.ImageSize(a.style.IconPath(a.glyph)); w > 0 {
		return w
	}
	return m.TextWidth(a.glyph.Symbol())
}

func (a *LayoutIndicator) Render(s canvas.Surface, x, y, h int) {
	path := a.style.IconPath(a.glyph)
	if w, ih := s.ImageSize(path); w > 0 {
		s.DrawImage(x, y+(h-ih)/2, path)
		return
	}
	sym := a.glyph.Symbol()
	s.Save()
	s.SetPen(a.style.Normal)
	s.DrawText(x, y, s.TextWidth(sym), h, sym)
	s.Restore()
}
