package snapshot

import (
	"testing"
	"time"

	"github.com/daviddao/hlbar/internal/area"
	"github.com/daviddao/hlbar/internal/bar"
	"github.com/daviddao/hlbar/internal/canvas"
	"github.com/daviddao/hlbar/internal/layout"
)

var mono = canvas.Mono{Advance: 8}

// newTestRegistry creates a one-screen registry with a few areas.
func newTestRegistry(t *testing.T) *bar.Registry {
	t.Helper()
	reg := bar.NewRegistry(1)
	add := func(a area.Area, d area.Dock) {
		if err := reg.Add(a, bar.Key{Screen: 0, Dock: d}); err != nil {
			t.Fatalf("Add %s: %v", a.ID(), err)
		}
	}

	ws := area.New(area.KindWorkspaces, "ws", area.Left, 0, nil)
	ws.SetText("!1 ^2 3")
	add(ws, area.Top)

	cpu := area.New(area.KindText, "cpu", area.Right, 0, nil)
	cpu.SetText("cpu^low()|12%")
	add(cpu, area.Top)

	add(area.New(area.KindText, "empty", area.Right, 1, nil), area.Top)

	now := time.Date(2024, 3, 1, 13, 4, 5, 0, time.Local)
	add(area.NewClock("clk", area.Right, 0, nil, now), area.Bottom)
	return reg
}

func TestBuildEmptyRegistry(t *testing.T) {
	snap := Build(bar.NewRegistry(2), layout.DefaultEngine(), mono, 400, 15)

	if len(snap.Bars) != 4 {
		t.Fatalf("expected 4 bars, got %d", len(snap.Bars))
	}
	if snap.TotalAreas != 0 || snap.VisibleAreas != 0 {
		t.Errorf("expected no areas, got %d/%d", snap.TotalAreas, snap.VisibleAreas)
	}
	if snap.EmptyBars != 4 {
		t.Errorf("expected 4 empty bars, got %d", snap.EmptyBars)
	}
	if snap.BuiltAt.IsZero() {
		t.Error("BuiltAt should not be zero")
	}
	// Even an empty bar paints its background and both highlight pills.
	for _, b := range snap.Bars {
		if len(b.Ops) != 3 || b.Ops[0].Kind != "rect" {
			t.Errorf("bar %v ops = %+v", b.Key, b.Ops)
		}
	}
}

func TestBuildWithAreas(t *testing.T) {
	snap := Build(newTestRegistry(t), layout.DefaultEngine(), mono, 400, 15)

	if snap.TotalAreas != 4 {
		t.Errorf("TotalAreas = %d, want 4", snap.TotalAreas)
	}
	if snap.VisibleAreas != 3 {
		t.Errorf("VisibleAreas = %d, want 3", snap.VisibleAreas)
	}
	if snap.EmptyBars != 0 {
		t.Errorf("EmptyBars = %d, want 0", snap.EmptyBars)
	}

	top := snap.Bars[0]
	if top.Key != (bar.Key{Screen: 0, Dock: area.Top}) {
		t.Fatalf("first bar = %v", top.Key)
	}
	byID := map[string]Placement{}
	for _, p := range top.Areas {
		byID[p.ID] = p
	}
	if p := byID["ws"]; p.X != 2 || p.Width != 40 || p.Content != "!1 ^2 3" {
		t.Errorf("ws placement = %+v", p)
	}
	// "cpu" + gap + "12%": 3*8 + 8 + 3*8.
	if p := byID["cpu"]; p.Width != 56 || p.X != 400-56 || p.Content != "cpu 12%" {
		t.Errorf("cpu placement = %+v", p)
	}
	if p := byID["empty"]; p.Width != 0 {
		t.Errorf("empty placement = %+v", p)
	}
}

func TestBuildRecordsClock(t *testing.T) {
	snap := Build(newTestRegistry(t), layout.DefaultEngine(), mono, 400, 15)
	bottom := snap.Bars[1]
	if len(bottom.Areas) != 1 {
		t.Fatalf("bottom areas = %+v", bottom.Areas)
	}
	p := bottom.Areas[0]
	if p.Kind != area.KindClock || p.Content[:23] != "Fri 2024-03-01 13:04:05" {
		t.Errorf("clock placement = %+v", p)
	}

	var swatch, text bool
	for _, op := range bottom.Ops {
		switch op.Kind {
		case "rect":
			if op.X == p.X-8-4 && op.W == p.Width+8+6 {
				swatch = true
			}
		case "text-right":
			text = op.Text == "Fri 2024-03-01 13:04:05"
		}
	}
	if !swatch || !text {
		t.Errorf("clock ops missing swatch=%v text=%v: %+v", swatch, text, bottom.Ops)
	}
}

func TestContent(t *testing.T) {
	lt := area.New(area.KindLayout, "lt", area.Left, 0, nil)
	lt.SetText("[M] 3")
	if got := Content(lt); got != "[M]" {
		t.Errorf("Content(layout) = %q", got)
	}
	img := area.New(area.KindText, "img", area.Left, 0, nil)
	img.SetText("^i(/x.png)a#b")
	if got := Content(img); got != "a b" {
		t.Errorf("Content(text) = %q", got)
	}
}
