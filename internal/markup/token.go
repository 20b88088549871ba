// Package markup tokenizes the inline markup carried by `text` commands.
//
// The language is small: `^i(path,...)` inserts an image, `^low()` and
// `^norm()` switch the foreground pen, any other `^cmd(args)` is consumed
// silently, and the bare characters `|` and `#` are fixed-width gaps.
// Everything else is literal text.
package markup

import "slices"

// Token is one element of an area's visual content. Every variant is a
// comparable value type, so token sequences compare structurally.
type Token interface {
	token()
}

// Text is literal text, measured and drawn with the current pen.
type Text struct {
	S string
}

// Gap is blank space of a fixed width. It draws nothing.
type Gap struct {
	Width int
}

// Foreground switches the pen for the following text tokens. It has no
// width.
type Foreground struct {
	Pen Pen
}

// Image is an inline image referenced by path.
type Image struct {
	Path string
}

func (Text) token()       {}
func (Gap) token()        {}
func (Foreground) token() {}
func (Image) token()      {}

// Pen names a foreground color role. The concrete color is resolved by the
// renderer's theme.
type Pen int

const (
	PenNormal Pen = iota
	PenLow
)

func (p Pen) String() string {
	switch p {
	case PenNormal:
		return "normal"
	case PenLow:
		return "low"
	}
	return "?"
}

// Gap widths by markup character.
var gapWidths = map[rune]int{
	'#': 4,
	'|': 8,
}

// GapWidth returns the width of the gap character c.
func GapWidth(c rune) (int, bool) {
	w, ok := gapWidths[c]
	return w, ok
}

// Equal reports whether two token sequences are structurally equal.
func Equal(a, b []Token) bool {
	return slices.Equal(a, b)
}
