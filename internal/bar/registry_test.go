package bar

import (
	"errors"
	"testing"
	"time"

	"github.com/daviddao/hlbar/internal/area"
)

func TestNewRegistryBars(t *testing.T) {
	r := NewRegistry(2)
	if r.Screens() != 2 {
		t.Fatalf("Screens() = %d", r.Screens())
	}
	bars := r.Bars()
	if len(bars) != 4 {
		t.Fatalf("len(Bars()) = %d, want 4", len(bars))
	}
	want := []Key{{0, area.Top}, {0, area.Bottom}, {1, area.Top}, {1, area.Bottom}}
	for i, b := range bars {
		if b.Key != want[i] {
			t.Errorf("bar %d key = %v, want %v", i, b.Key, want[i])
		}
	}
	if _, ok := r.Bar(Key{Screen: 2}); ok {
		t.Error("Bar(screen 2) should not exist")
	}
	if _, ok := r.Bar(Key{Screen: -1}); ok {
		t.Error("Bar(screen -1) should not exist")
	}
}

func TestAddAndLookup(t *testing.T) {
	r := NewRegistry(1)
	a := area.New(area.KindText, "cpu", area.Right, 1, nil)
	if err := r.Add(a, Key{0, area.Bottom}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, ok := r.Area("cpu")
	if !ok || got != a {
		t.Fatalf("Area(cpu) = %v, %v", got, ok)
	}
	b, _ := r.Bar(Key{0, area.Bottom})
	if len(b.Areas()) != 1 || b.Areas()[0] != a {
		t.Errorf("bottom bar areas = %v", b.Areas())
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d", r.Len())
	}
}

func TestAddScreenOutOfRange(t *testing.T) {
	r := NewRegistry(1)
	a := area.New(area.KindText, "x", area.Right, 0, nil)
	err := r.Add(a, Key{Screen: 1})
	if !errors.Is(err, ErrScreenOutOfRange) {
		t.Fatalf("Add err = %v, want ErrScreenOutOfRange", err)
	}
	if _, ok := r.Area("x"); ok {
		t.Error("rejected area should not be registered")
	}
	if r.Dirty() {
		t.Error("rejected area should not dirty any bar")
	}
}

func TestAddReplacesSameID(t *testing.T) {
	r := NewRegistry(1)
	old := area.New(area.KindText, "x", area.Right, 0, nil)
	repl := area.New(area.KindText, "x", area.Left, 0, nil)
	r.Add(old, Key{0, area.Top})
	r.TakeDirty()

	r.Add(repl, Key{0, area.Bottom})
	top, _ := r.Bar(Key{0, area.Top})
	bottom, _ := r.Bar(Key{0, area.Bottom})
	if len(top.Areas()) != 0 {
		t.Errorf("old area still attached to top bar")
	}
	if len(bottom.Areas()) != 1 || bottom.Areas()[0] != repl {
		t.Errorf("bottom bar areas = %v", bottom.Areas())
	}
	if got := len(r.TakeDirty()); got != 2 {
		t.Errorf("dirty bars = %d, want 2", got)
	}
}

func TestDirtyCoalesces(t *testing.T) {
	r := NewRegistry(1)
	a := area.New(area.KindText, "a", area.Right, 0, nil)
	b := area.New(area.KindText, "b", area.Right, 1, nil)
	r.Add(a, Key{0, area.Top})
	r.Add(b, Key{0, area.Top})
	r.Changed("a")
	r.Changed("b")
	r.Changed("missing")

	if !r.Dirty() {
		t.Fatal("Dirty() = false")
	}
	dirty := r.TakeDirty()
	if len(dirty) != 1 || dirty[0].Key != (Key{0, area.Top}) {
		t.Errorf("TakeDirty() = %v, want the top bar once", dirty)
	}
	if r.Dirty() || len(r.TakeDirty()) != 0 {
		t.Error("dirty set should be cleared")
	}
}

func TestInvalidate(t *testing.T) {
	r := NewRegistry(2)
	r.Invalidate()
	if got := len(r.TakeDirty()); got != 4 {
		t.Errorf("TakeDirty() after Invalidate = %d bars, want 4", got)
	}
}

func TestTick(t *testing.T) {
	r := NewRegistry(1)
	now := time.Date(2024, 3, 1, 13, 4, 5, 0, time.Local)
	clk := area.NewClock("clk", area.Right, 0, nil, now)
	r.Add(clk, Key{0, area.Bottom})
	r.Add(area.New(area.KindText, "t", area.Right, 0, nil), Key{0, area.Top})
	r.TakeDirty()

	if r.Tick(now) {
		t.Error("Tick at the same instant should not report a change")
	}
	if !r.Tick(now.Add(time.Second)) {
		t.Error("Tick one second later should report a change")
	}
	dirty := r.TakeDirty()
	if len(dirty) != 1 || dirty[0].Key.Dock != area.Bottom {
		t.Errorf("TakeDirty() = %v, want the bottom bar", dirty)
	}
}

func TestKeyString(t *testing.T) {
	if s := (Key{1, area.Bottom}).String(); s != "1/bottom" {
		t.Errorf("Key.String() = %q", s)
	}
}
