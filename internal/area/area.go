// Package area implements the named content regions of a bar.
//
// An area owns its float class and weight and one of four payloads: a markup
// token sequence (Text), a workspace list (Workspaces), a layout indicator
// (LayoutIndicator) or a color clock (Clock). Mutations report whether a
// redraw is warranted; they never redraw themselves.
package area

import (
	"errors"
	"time"

	"github.com/daviddao/hlbar/internal/canvas"
)

// ErrInvalidOperation marks a contract violation, such as setting the text
// of a clock area.
var ErrInvalidOperation = errors.New("invalid operation")

// Area is one independently updatable region of a bar.
type Area interface {
	ID() string
	Kind() Kind
	Float() Float
	// Weight is the distance from the group's outer edge; an ascending sort
	// gives visual order for both groups.
	Weight() int

	// SetText replaces the content from a raw `text` payload and reports
	// whether a redraw is needed.
	SetText(raw string) bool
	// Width is the total width of the content.
	Width(m canvas.Measurer) int
	// Render draws the content with its left edge at x. Pen changes do not
	// leak out of the call.
	Render(s canvas.Surface, x, y, h int)
}

// Ticker is implemented by areas driven by the periodic tick.
type Ticker interface {
	Tick(now time.Time) bool
}

// New constructs an area of the given kind.
func New(kind Kind, id string, f Float, weight int, style *Style) Area {
	b := newBase(id, kind, f, weight, style)
	switch kind {
	case KindClock:
		c := &Clock{base: b}
		c.Tick(time.Now())
		return c
	case KindWorkspaces:
		return &Workspaces{base: b}
	case KindLayout:
		return &LayoutIndicator{base: b}
	default:
		return &Text{base: b}
	}
}

type base struct {
	id     string
	kind   Kind
	float  Float
	weight int
	style  *Style
}

func newBase(id string, kind Kind, f Float, weight int, style *Style) base {
	if f.LeftGroup() {
		weight = -weight
	}
	if style == nil {
		style = DefaultStyle()
	}
	return base{id: id, kind: kind, float: f, weight: weight, style: style}
}

func (b *base) ID() string   { return b.id }
func (b *base) Kind() Kind   { return b.kind }
func (b *base) Float() Float { return b.float }
func (b *base) Weight() int  { return b.weight }
