// Package snapshot builds immutable views of every bar's composed layout.
//
// A DataSnapshot captures where each area landed and the drawing operations
// a surface would receive, at a point in time. The interactive host rebuilds
// it on demand; the snapshot command dumps it as JSON.
package snapshot

import (
	"strings"
	"time"

	"github.com/daviddao/hlbar/internal/area"
	"github.com/daviddao/hlbar/internal/bar"
	"github.com/daviddao/hlbar/internal/canvas"
	"github.com/daviddao/hlbar/internal/layout"
	"github.com/daviddao/hlbar/internal/markup"
)

// DataSnapshot is an immutable, self-contained view of every bar.
type DataSnapshot struct {
	Bars []BarSnapshot

	// Counts.
	TotalAreas   int
	VisibleAreas int
	EmptyBars    int

	// Timestamp of snapshot creation.
	BuiltAt time.Time
}

// BarSnapshot is the composed layout of one bar.
type BarSnapshot struct {
	Key    bar.Key
	Width  int
	Height int
	Areas  []Placement
	Ops    []canvas.Op
}

// Placement is where one area was put.
type Placement struct {
	ID      string
	Kind    area.Kind
	Float   area.Float
	Weight  int
	X       int
	Width   int
	Content string
}

// Build composes every bar of reg at the given size and records the paint
// operations.
func Build(reg *bar.Registry, e layout.Engine, m canvas.Measurer, width, height int) *DataSnapshot {
	snap := &DataSnapshot{BuiltAt: time.Now()}
	for _, b := range reg.Bars() {
		bs := BuildBar(b, e, m, width, height)
		if len(bs.Areas) == 0 {
			snap.EmptyBars++
		}
		for _, p := range bs.Areas {
			snap.TotalAreas++
			if p.Width > 0 {
				snap.VisibleAreas++
			}
		}
		snap.Bars = append(snap.Bars, bs)
	}
	return snap
}

// BuildBar composes one bar.
func BuildBar(b *bar.Bar, e layout.Engine, m canvas.Measurer, width, height int) BarSnapshot {
	plan := e.Compose(b.Areas(), m, width, height)
	rec := canvas.NewRecorder(m, e.Foreground)
	e.Paint(rec, plan)

	bs := BarSnapshot{Key: b.Key, Width: width, Height: height, Ops: rec.Ops}
	for _, op := range plan.Placements() {
		bs.Areas = append(bs.Areas, Placement{
			ID:      op.Area.ID(),
			Kind:    op.Area.Kind(),
			Float:   op.Float,
			Weight:  op.Area.Weight(),
			X:       op.X,
			Width:   op.Width,
			Content: Content(op.Area),
		})
	}
	return bs
}

// Content is a plain-text rendition of an area's payload.
func Content(a area.Area) string {
	switch a := a.(type) {
	case *area.Text:
		var b strings.Builder
		for _, tok := range a.Tokens() {
			switch tok := tok.(type) {
			case markup.Text:
				b.WriteString(tok.S)
			case markup.Gap:
				b.WriteString(" ")
			}
		}
		return b.String()
	case *area.Workspaces:
		names := make([]string, len(a.Entries()))
		for i, ws := range a.Entries() {
			names[i] = ws.Prefix + ws.Name
		}
		return strings.Join(names, " ")
	case *area.LayoutIndicator:
		return a.Glyph().Symbol()
	case *area.Clock:
		s := a.Sample()
		return s.Text + " " + s.Color
	}
	return ""
}
