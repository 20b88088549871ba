// Package layout composes the areas attached to one bar into absolute draw
// positions.
//
// The left super-group (Left, LeftHighlight, CenterLeft) grows from the left
// edge toward the center, the right super-group (Right, RightHighlight,
// CenterRight) from the right edge. Within a class areas are ordered by
// ascending weight; a highlight class is drawn over a chevron-edged pill.
package layout

import (
	"slices"

	"github.com/daviddao/hlbar/internal/area"
	"github.com/daviddao/hlbar/internal/canvas"
)

const (
	// AreaPadding is the space on each side of a divider.
	AreaPadding = 8
	// PillPadding is added to a non-empty pill's content width.
	PillPadding = 16
	// ClassGap separates a class from the previous one in its group.
	ClassGap = 4
	// EdgeGap is the left margin of the Left class.
	EdgeGap = 2
)

// OpKind identifies a planned drawing operation.
type OpKind int

const (
	OpPill OpKind = iota
	OpDivider
	OpArea
)

func (k OpKind) String() string {
	switch k {
	case OpPill:
		return "pill"
	case OpDivider:
		return "divider"
	case OpArea:
		return "area"
	}
	return "?"
}

// Op is one step of a plan. Pills and dividers carry their outline, areas
// their position and measured width.
type Op struct {
	Kind   OpKind
	Float  area.Float
	Points []canvas.Point
	Area   area.Area
	X      int
	Width  int
}

// Plan is the ordered result of composing one bar.
type Plan struct {
	Width  int
	Height int
	Ops    []Op
}

// Placements returns the area operations in render order.
func (p Plan) Placements() []Op {
	var out []Op
	for _, op := range p.Ops {
		if op.Kind == OpArea {
			out = append(out, op)
		}
	}
	return out
}

// Engine holds the geometry constant and colors used for composing and
// painting.
type Engine struct {
	ArrowWidth int
	Background string
	Highlight  string
	Foreground string
	Divider    string
}

// DefaultEngine returns an engine with the stock theme.
func DefaultEngine() Engine {
	return Engine{
		ArrowWidth: 8,
		Background: "#1c1c1c",
		Highlight:  "#262626",
		Foreground: "#9e9e9e",
		Divider:    "#9e9e9e",
	}
}

var (
	leftClasses  = []area.Float{area.Left, area.LeftHighlight, area.CenterLeft}
	rightClasses = []area.Float{area.Right, area.RightHighlight, area.CenterRight}
)

// member is an area with its measured width.
type member struct {
	area  area.Area
	width int
}

// class returns the areas of exactly f in ascending weight order, with ties
// kept in insertion order, and the width budget of the visible ones.
func (e Engine) class(areas []area.Area, f area.Float, m canvas.Measurer) ([]member, int) {
	var out []member
	for _, a := range areas {
		if a.Float() == f {
			out = append(out, member{area: a, width: a.Width(m)})
		}
	}
	slices.SortStableFunc(out, func(x, y member) int {
		return x.area.Weight() - y.area.Weight()
	})

	total, visible := 0, 0
	for _, mb := range out {
		if mb.width > 0 {
			total += mb.width
			visible++
		}
	}
	total += max(0, visible-1) * (e.ArrowWidth + 2*AreaPadding)
	return out, total
}

// Compose lays out areas on a bar of the given size.
func (e Engine) Compose(areas []area.Area, m canvas.Measurer, width, height int) Plan {
	p := Plan{Width: width, Height: height}
	h := float64(height)
	arrow := e.ArrowWidth

	edge := 0
	for _, f := range leftClasses {
		members, total := e.class(areas, f, m)
		x := edge + ClassGap
		if f == area.Left {
			x = edge + EdgeGap
		}
		if f.Highlight() {
			pts, inner, outer := e.pill(x, total, h, f)
			p.Ops = append(p.Ops, Op{Kind: OpPill, Float: f, Points: pts})
			x, edge = inner, outer
		}
		first := true
		for _, mb := range members {
			if mb.width == 0 {
				p.Ops = append(p.Ops, Op{Kind: OpArea, Float: f, Area: mb.area, X: x})
				continue
			}
			if !first {
				x += AreaPadding
				fx := float64(x)
				p.Ops = append(p.Ops, Op{Kind: OpDivider, Float: f, Points: []canvas.Point{
					canvas.Pt(fx, 0),
					canvas.Pt(fx+float64(arrow)-0.5, h/2),
					canvas.Pt(fx, h),
				}})
				x += arrow + AreaPadding
			}
			first = false
			p.Ops = append(p.Ops, Op{Kind: OpArea, Float: f, Area: mb.area, X: x, Width: mb.width})
			x += mb.width
		}
		if !f.Highlight() {
			edge = x
		}
	}

	edge = width
	for _, f := range rightClasses {
		members, total := e.class(areas, f, m)
		edge -= total
		if f != area.Right {
			edge -= ClassGap
		}
		x := edge
		if f.Highlight() {
			edge -= 2 * arrow
			if total > 0 {
				edge -= PillPadding
			}
			var pts []canvas.Point
			pts, x, _ = e.pill(edge, total, h, f)
			p.Ops = append(p.Ops, Op{Kind: OpPill, Float: f, Points: pts})
		}
		first := true
		for _, mb := range members {
			if mb.width == 0 {
				p.Ops = append(p.Ops, Op{Kind: OpArea, Float: f, Area: mb.area, X: x})
				continue
			}
			if !first {
				fx := float64(x)
				p.Ops = append(p.Ops, Op{Kind: OpDivider, Float: f, Points: []canvas.Point{
					canvas.Pt(fx+float64(arrow)-0.5, 0),
					canvas.Pt(fx, h/2),
					canvas.Pt(fx+float64(arrow)-0.5, h),
				}})
				x += arrow + AreaPadding
			}
			first = false
			p.Ops = append(p.Ops, Op{Kind: OpArea, Float: f, Area: mb.area, X: x, Width: mb.width})
			x += mb.width + AreaPadding
		}
	}
	return p
}

// pill returns the outline of a highlight section starting at x with
// content width w, the x where its content starts and the x of its outer
// end. Left-group pills point right, right-group pills point left.
func (e Engine) pill(x, w int, h float64, f area.Float) ([]canvas.Point, int, int) {
	if w > 0 {
		w += PillPadding
	}
	a := float64(e.ArrowWidth)
	fx, fw := float64(x), float64(w)

	var pts []canvas.Point
	if f.LeftGroup() {
		pts = []canvas.Point{
			canvas.Pt(fx, 0),
			canvas.Pt(fx+a, h/2),
			canvas.Pt(fx, h),
			canvas.Pt(fx+a+fw, h),
			canvas.Pt(fx+2*a+fw, h/2),
			canvas.Pt(fx+a+fw, 0),
		}
	} else {
		pts = []canvas.Point{
			canvas.Pt(fx, (h-1)/2),
			canvas.Pt(fx+a, h),
			canvas.Pt(fx+2*a+fw, h),
			canvas.Pt(fx+a+fw, h/2),
			canvas.Pt(fx+2*a+fw, 0),
			canvas.Pt(fx+a, 0),
		}
	}
	return pts, x + e.ArrowWidth + AreaPadding, x + 2*e.ArrowWidth + w
}

// Paint replays a plan on s: background, then pills, dividers and areas in
// plan order.
func (e Engine) Paint(s canvas.Surface, p Plan) {
	s.Save()
	defer s.Restore()

	s.FillRect(0, 0, p.Width, p.Height, e.Background)
	s.SetPen(e.Foreground)
	for _, op := range p.Ops {
		switch op.Kind {
		case OpPill:
			s.FillPolygon(op.Points, e.Highlight)
		case OpDivider:
			s.Save()
			s.SetPen(e.Divider)
			s.StrokePath(op.Points)
			s.Restore()
		case OpArea:
			if op.Width > 0 {
				op.Area.Render(s, op.X, 0, p.Height)
			}
		}
	}
}

// Render composes and paints areas in one step.
func (e Engine) Render(s canvas.Surface, areas []area.Area, width, height int) Plan {
	p := e.Compose(areas, s, width, height)
	e.Paint(s, p)
	return p
}
